// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

// Package codec provides body serialization and body compression for the
// extraction pipeline. Serializers map decoded bytes onto caller types,
// compressors unwrap Content-Encoding before bytes reach the collector.
package codec

import (
	"errors"
)

// Serializer defines body serialization interface.
type Serializer interface {
	// Unmarshal deserializes the in bytes into body.
	Unmarshal(in []byte, body interface{}) error

	// Marshal returns the bytes serialized from body.
	Marshal(body interface{}) (out []byte, err error)
}

// SerializationType defines the code of different serializers.
const (
	// SerializationTypeXML is xml serialization code (application/xml for http).
	SerializationTypeXML = 0
	// SerializationTypeTextXML is xml serialization code (text/xml for http).
	SerializationTypeTextXML = 1
	// SerializationTypeJSON is json serialization code.
	SerializationTypeJSON = 2
	// SerializationTypeForm is used to handle form request.
	SerializationTypeForm = 3
	// SerializationTypeNoop is bytes empty serialization code.
	SerializationTypeNoop = 4

	// SerializationTypeUnsupported is unsupported serialization code.
	SerializationTypeUnsupported = 128
)

var serializers = make(map[int]Serializer)

// RegisterSerializer registers serializer, will be called by init function
// in third package.
func RegisterSerializer(serializationType int, s Serializer) {
	serializers[serializationType] = s
}

// GetSerializer returns the serializer defined by serialization code.
func GetSerializer(serializationType int) Serializer {
	return serializers[serializationType]
}

// Unmarshal deserializes the in bytes into body. The specific serialization
// mode is defined by serializationType code, xml is default mode.
func Unmarshal(serializationType int, in []byte, body interface{}) error {
	if body == nil {
		return nil
	}
	if serializationType == SerializationTypeUnsupported {
		return nil
	}

	s := GetSerializer(serializationType)
	if s == nil {
		return errors.New("serializer not registered")
	}
	return s.Unmarshal(in, body)
}

// Marshal returns the serialized bytes from body. The specific serialization
// mode is defined by serializationType code, xml is default mode.
func Marshal(serializationType int, body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	if serializationType == SerializationTypeUnsupported {
		return nil, nil
	}

	s := GetSerializer(serializationType)
	if s == nil {
		return nil, errors.New("serializer not registered")
	}
	return s.Marshal(body)
}

var contentTypeSerializationType = map[string]int{
	"application/xml":                   SerializationTypeXML,
	"text/xml":                          SerializationTypeTextXML,
	"application/json":                  SerializationTypeJSON,
	"application/x-www-form-urlencoded": SerializationTypeForm,
	"application/octet-stream":          SerializationTypeNoop,
}

var serializationTypeContentType = map[int]string{
	SerializationTypeXML:     "application/xml",
	SerializationTypeTextXML: "text/xml",
	SerializationTypeJSON:    "application/json",
	SerializationTypeForm:    "application/x-www-form-urlencoded",
	SerializationTypeNoop:    "application/octet-stream",
}

// RegisterContentType maps an http media type to an existing serialization
// type. Tell the pipeline which serialization method to use to parse bodies
// declared with this content-type.
func RegisterContentType(contentType string, serializationType int) {
	contentTypeSerializationType[contentType] = serializationType
	if _, ok := serializationTypeContentType[serializationType]; !ok {
		serializationTypeContentType[serializationType] = contentType
	}
}

// SerializationType returns the serialization type registered for the given
// media type, reporting whether a registration exists. The media type must
// already be stripped of its parameters.
func SerializationType(contentType string) (int, bool) {
	st, ok := contentTypeSerializationType[contentType]
	return st, ok
}

// ContentType returns the primary media type for a serialization type.
func ContentType(serializationType int) string {
	return serializationTypeContentType[serializationType]
}
