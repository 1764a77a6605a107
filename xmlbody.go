// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

// Package xmlbody extracts typed values from XML request bodies.
//
// The extraction validates the declared content type, accumulates the body
// under a configurable size limit, decodes the declared charset and
// deserializes the document onto a caller-specified type:
//
//	type Info struct {
//		Username string `xml:"username"`
//	}
//
//	func index(w http.ResponseWriter, r *http.Request) {
//		info, err := xmlbody.FromRequest[Info](r)
//		if err != nil {
//			xmlbody.DefaultErrorHandler(w, r, err)
//			return
//		}
//		fmt.Fprintf(w, "Welcome %s!", info.Value.Username)
//	}
//
// Non-UTF-8 payloads require a blank import of the charset subpackage:
//
//	import _ "trpc.group/trpc-go/xmlbody/charset"
//
// Compressed bodies (gzip, snappy, deflate) are unwrapped transparently
// according to the Content-Encoding header before the size limit applies.
package xmlbody

import (
	"fmt"
	"io"
	"net/http"

	"trpc.group/trpc-go/xmlbody/codec"
	"trpc.group/trpc-go/xmlbody/errs"
	"trpc.group/trpc-go/xmlbody/log"
)

// Xml holds a value extracted from an XML request body.
type Xml[T any] struct {
	Value T
}

// String implements fmt.Stringer.
func (x *Xml[T]) String() string {
	return fmt.Sprintf("XML: %+v", x.Value)
}

// FromRequest deserializes T from the request's XML body.
//
// Accepted media types are application/xml, text/xml, any type with an +xml
// suffix, and whatever the WithContentType predicate allows.
func FromRequest[T any](r *http.Request, opts ...Option) (*Xml[T], error) {
	cfg := NewConfig(opts...)
	v, err := extract[T](r, cfg, acceptXML(cfg), xmlSerializationFor)
	if err != nil {
		return nil, err
	}
	return &Xml[T]{Value: *v}, nil
}

// extract runs one pipeline against a net/http request.
func extract[T any](
	r *http.Request,
	cfg *Config,
	accept func(mediaType string) bool,
	serializationFor func(mediaType string) int,
) (*T, error) {
	payload, err := payloadFromRequest(r)
	if err != nil {
		return nil, err
	}
	v, err := newPipeline[T](cfg, accept, serializationFor).
		Run(r.Context(), r.Header.Get(headerContentType), payload)
	if err != nil {
		log.Debugf("failed to deserialize body, request path: %s, err: %v", r.URL.Path, err)
		return nil, err
	}
	return v, nil
}

// payloadFromRequest borrows the request body as an extraction source,
// unwrapping Content-Encoding so the size limit observes decompressed bytes.
// The stream is not touched here; decompressors initialize on first read.
func payloadFromRequest(r *http.Request) (*Payload, error) {
	var body io.Reader = r.Body
	if body == nil {
		body = http.NoBody
	}
	length := r.ContentLength
	if encoding := r.Header.Get(headerContentEncoding); encoding != "" && encoding != "identity" {
		c := codec.GetCompressor(encoding)
		if c == nil {
			return nil, errs.Newf(errs.CodeTransport, "unsupported content encoding %q", encoding)
		}
		body = &lazyDecompressReader{c: c, src: body}
		// the declared length counts compressed bytes, useless as a hint now
		length = -1
	}
	return NewPayload(body, length), nil
}

// lazyDecompressReader defers decompressor construction to the first read, so
// that building a Payload never consumes body bytes. Failures of the wrapped
// decompressor surface as read errors.
type lazyDecompressReader struct {
	c   codec.Compressor
	src io.Reader
	r   io.Reader
	err error
}

func (l *lazyDecompressReader) Read(p []byte) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	if l.r == nil {
		r, err := l.c.Decompress(l.src)
		if err != nil {
			l.err = err
			return 0, err
		}
		l.r = r
	}
	return l.r.Read(p)
}

// xmlSerializationFor picks the serializer for an accepted media type. Only
// the xml family consults the registry; everything else, the +xml suffix
// family and override-accepted types included, parses as generic xml.
func xmlSerializationFor(mediaType string) int {
	if isXMLMediaType(mediaType) {
		if st, ok := codec.SerializationType(mediaType); ok {
			return st
		}
	}
	return codec.SerializationTypeXML
}
