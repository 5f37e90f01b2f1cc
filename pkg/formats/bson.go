package formats

import (
	"errors"
	"io"
	"io/ioutil"
	"sort"

	"github.com/globalsign/mgo/bson"

	"github.com/kseistrup/ser2ser/pkg/tree"
)

var (
	_ Encoding = bsonEncoding{}
	_ Decoder  = &bsonDecoder{}
	_ Encoder  = &bsonEncoder{}

	errBSONDocument = errors.New("bson can only encode a top-level mapping")
)

type bsonEncoding struct{}

func (bsonEncoding) NewDecoder(r io.Reader) Decoder {
	return &bsonDecoder{r: r}
}

func (bsonEncoding) NewEncoder(w io.Writer) Encoder {
	return &bsonEncoder{w}
}

type bsonDecoder struct {
	r    io.Reader
	read bool
}

func (d *bsonDecoder) Decode() (interface{}, error) {
	if d.read {
		return nil, io.EOF
	}
	d.read = true

	data, err := ioutil.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return fromBSON(m), nil
}

func fromBSON(v interface{}) interface{} {
	switch t := v.(type) {
	case bson.M:
		return fromBSONMap(t)
	case map[string]interface{}:
		return fromBSONMap(t)
	case bson.D:
		out := make(tree.Map, 0, len(t))
		for _, e := range t {
			out = append(out, tree.Entry{Key: e.Name, Value: fromBSON(e.Value)})
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = fromBSON(t[i])
		}
		return out
	default:
		return v
	}
}

// fromBSONMap normalizes an unordered document to lexical key order.
func fromBSONMap(m map[string]interface{}) tree.Map {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(tree.Map, 0, len(keys))
	for _, k := range keys {
		out = append(out, tree.Entry{Key: k, Value: fromBSON(m[k])})
	}
	return out
}

type bsonEncoder struct {
	w io.Writer
}

func (e *bsonEncoder) Encode(v interface{}, opts EncodeOptions) error {
	m, ok := v.(tree.Map)
	if !ok {
		return errBSONDocument
	}
	data, err := bson.Marshal(toBSON(m))
	if err != nil {
		return err
	}
	_, err = e.w.Write(data)
	return err
}

// toBSON keeps mapping order by going through bson.D instead of bson.M.
func toBSON(m tree.Map) bson.D {
	doc := make(bson.D, 0, len(m))
	for _, e := range m {
		doc = append(doc, bson.DocElem{Name: e.Key, Value: toBSONValue(e.Value)})
	}
	return doc
}

func toBSONValue(v interface{}) interface{} {
	switch t := v.(type) {
	case tree.Map:
		return toBSON(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = toBSONValue(t[i])
		}
		return out
	default:
		return v
	}
}

func init() {
	Register(Info{
		Name:   "bson",
		Binary: true,
	}, bsonEncoding{})
}
