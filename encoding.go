package vecframe

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecframe/codec"
	"github.com/hupe1980/vecframe/value"
)

// Document is the column-oriented form of a DataFrame handed to persistence
// collaborators. Data[i] holds the values of column Columns[i] in row order.
type Document struct {
	Name    any     `json:"name,omitempty"`
	Columns []any   `json:"columns"`
	Index   []any   `json:"index"`
	Data    [][]any `json:"data"`
}

// Document returns the column-oriented form of df.
func (df *DataFrame) Document() Document {
	doc := Document{
		Name:    df.name,
		Columns: df.columns.Labels(),
		Index:   df.rows.Labels(),
		Data:    make([][]any, len(df.data)),
	}
	for i, vec := range df.data {
		doc.Data[i] = vec.Values()
	}
	return doc
}

// FromDocument rebuilds a DataFrame equal to the one doc was taken from.
func FromDocument(doc Document, opts ...Option) (*DataFrame, error) {
	if len(doc.Columns) != len(doc.Data) {
		return nil, &LengthError{Expected: len(doc.Columns), Actual: len(doc.Data)}
	}
	columns := make(map[Label]any, len(doc.Columns))
	for i, name := range doc.Columns {
		columns[name] = doc.Data[i]
	}
	base := []Option{
		WithColumns(doc.Columns...),
		WithLabels(doc.Index...),
		WithName(doc.Name),
	}
	return FromColumns(columns, append(base, opts...)...)
}

// Encode marshals the Document of df with c. A nil codec uses codec.Default.
func (df *DataFrame) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	b, err := c.Marshal(df.Document())
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.Name(), err)
	}
	return b, nil
}

// Decode unmarshals a Document with c and rebuilds the DataFrame. A nil codec
// uses codec.Default.
//
// Text codecs read numbers back as float64; whole-number labels are restored
// to int so positional indexes survive the round trip. Values compare equal
// by number, so 1 and 1.0 are the same element.
func Decode(c codec.Codec, data []byte, opts ...Option) (*DataFrame, error) {
	if c == nil {
		c = codec.Default
	}
	var doc Document
	if err := c.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.Name(), err)
	}
	doc.Columns = integralLabels(doc.Columns)
	doc.Index = integralLabels(doc.Index)
	return FromDocument(doc, opts...)
}

func integralLabels(labels []any) []any {
	for i, l := range labels {
		if value.KindOf(l) != value.KindFloat {
			continue
		}
		f, _ := value.ToFloat(l)
		if f == math.Trunc(f) && math.Abs(f) < math.MaxInt32 {
			labels[i] = int(f)
		}
	}
	return labels
}
