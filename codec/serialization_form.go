// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package codec

import (
	"fmt"
	"net/url"

	"github.com/go-playground/form/v4"
	"github.com/mitchellh/mapstructure"
)

// Form bodies use the same tag as json.
var formTag = "json"

func init() {
	RegisterSerializer(SerializationTypeForm, NewFormSerialization(formTag))
}

// NewFormSerialization initializes the form serialized object.
func NewFormSerialization(tag string) Serializer {
	encoder := form.NewEncoder()
	encoder.SetTagName(tag)
	decoder := form.NewDecoder()
	decoder.SetTagName(tag)
	return &FormSerialization{
		tagname: tag,
		encoder: encoder,
		decoder: decoder,
	}
}

// FormSerialization packages the kv structure of form bodies.
type FormSerialization struct {
	tagname string
	encoder *form.Encoder
	decoder *form.Decoder
}

// Unmarshal unpacks kv structure.
func (j *FormSerialization) Unmarshal(in []byte, body interface{}) error {
	values, err := url.ParseQuery(string(in))
	if err != nil {
		return err
	}
	switch body.(type) {
	// go-playground/form does not support map structure.
	case map[string]interface{}, *map[string]interface{}, map[string]string, *map[string]string:
		return unmarshalValues(j.tagname, values, body)
	default:
	}
	// First try using go-playground/form, it can handle nested struct.
	// But it cannot handle Chinese characters in byte slice.
	err = j.decoder.Decode(body, values)
	if err == nil {
		return nil
	}
	// Second try using mapstructure.
	if e := unmarshalValues(j.tagname, values, body); e != nil {
		return fmt.Errorf("unmarshal error: first try err = %+v, second try err = %w", err, e)
	}
	return nil
}

// unmarshalValues parses the corresponding fields in values according to tagname.
func unmarshalValues(tagname string, values url.Values, body interface{}) error {
	params := map[string]interface{}{}
	for k, v := range values {
		if len(v) == 1 {
			params[k] = v[0]
		} else {
			params[k] = v
		}
	}
	config := &mapstructure.DecoderConfig{TagName: tagname, Result: body, WeaklyTypedInput: true, Metadata: nil}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return err
	}
	return decoder.Decode(params)
}

// Marshal packages kv structure.
func (j *FormSerialization) Marshal(body interface{}) ([]byte, error) {
	if req, ok := body.(url.Values); ok {
		return []byte(req.Encode()), nil
	}
	val, err := j.encoder.Encode(body)
	if err != nil {
		return nil, err
	}
	return []byte(val.Encode()), nil
}
