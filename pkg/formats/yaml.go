package formats

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kseistrup/ser2ser/pkg/tree"
)

var (
	_ Encoding = yamlEncoding{}
	_ Decoder  = &yamlDecoder{}
	_ Encoder  = &yamlEncoder{}
)

type yamlEncoding struct{}

func (yamlEncoding) NewDecoder(r io.Reader) Decoder {
	return &yamlDecoder{yaml.NewDecoder(r)}
}

func (yamlEncoding) NewEncoder(w io.Writer) Encoder {
	return &yamlEncoder{w}
}

type yamlDecoder struct {
	decoder *yaml.Decoder
}

// Decode goes through yaml.Node rather than straight into interface{} so
// that mapping key order survives.
func (d *yamlDecoder) Decode() (interface{}, error) {
	var node yaml.Node
	if err := d.decoder.Decode(&node); err != nil {
		return nil, err
	}
	return yamlValue(&node)
}

func yamlValue(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlValue(node.Content[0])
	case yaml.MappingNode:
		m := make(tree.Map, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("mapping key at line %d: %v", node.Content[i].Line, err)
			}
			value, err := yamlValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m = append(m, tree.Entry{Key: key, Value: value})
		}
		return m, nil
	case yaml.SequenceNode:
		seq := make([]interface{}, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := yamlValue(child)
			if err != nil {
				return nil, err
			}
			seq = append(seq, value)
		}
		return seq, nil
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	default:
		var v interface{}
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

type yamlEncoder struct {
	w io.Writer
}

func (e *yamlEncoder) Encode(v interface{}, opts EncodeOptions) error {
	node, err := yamlNode(v)
	if err != nil {
		return err
	}

	indent := opts.Indent
	if indent < 1 {
		indent = 1
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return writeText(e.w, "yaml", buf.Bytes(), opts)
}

// yamlNode builds the node tree by hand so mappings keep their entry order;
// yaml.Marshal would route them through unordered Go maps.
func yamlNode(v interface{}) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case tree.Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range t {
			var key yaml.Node
			if err := key.Encode(e.Key); err != nil {
				return nil, err
			}
			value, err := yamlNode(e.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, &key, value)
		}
		return node, nil
	case []interface{}:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	default:
		var node yaml.Node
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return &node, nil
	}
}

func init() {
	Register(Info{
		Name:          "yaml",
		Aliases:       []string{"yml"},
		Lexer:         "yaml",
		DefaultIndent: 2,
	}, yamlEncoding{})
}
