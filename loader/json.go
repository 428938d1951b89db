package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/objschema/objschema/dynamic"
)

func decodeJSON(data []byte) (interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return dynamic.Undefined, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeJSONValue(dec)
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	} else if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return value, nil
}

func decodeJSONValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			m := dynamic.NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(keyTok.(string), value)
			}
			_, err = dec.Token()
			return m, err
		case '[':
			arr := []interface{}{}
			for dec.More() {
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, value)
			}
			_, err = dec.Token()
			return arr, err
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		return v.Float64()
	default:
		return v, nil
	}
}
