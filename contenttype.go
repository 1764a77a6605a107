// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"mime"
	"net/http"
	"strings"

	"trpc.group/trpc-go/xmlbody/errs"
)

const (
	mimeApplicationXML = "application/xml"
	mimeTextXML        = "text/xml"
	mimeXMLSuffix      = "+xml"
	mimeJSON           = "application/json"
	mimeJSONSuffix     = "+json"
	mimeForm           = "application/x-www-form-urlencoded"

	defaultCharset = "utf-8"
)

// body related http headers
var (
	headerContentType     = http.CanonicalHeaderKey("Content-Type")
	headerContentEncoding = http.CanonicalHeaderKey("Content-Encoding")
)

// checkContentType validates the declared media type against accept before
// any body byte is read and extracts the charset parameter, defaulting to
// utf-8. On mismatch the stream is left untouched.
func checkContentType(header string, accept func(mediaType string) bool) (mediaType, charset string, err error) {
	if header == "" {
		return "", "", errs.New(errs.CodeContentType, "missing content-type header")
	}
	mediaType, params, err := mime.ParseMediaType(header)
	if err != nil {
		return "", "", errs.Wrapf(err, errs.CodeContentType, "malformed content-type %q", header)
	}
	if !accept(mediaType) {
		return "", "", errs.Newf(errs.CodeContentType, "content type %q is not acceptable", mediaType)
	}
	charset = strings.ToLower(params["charset"])
	if charset == "" {
		charset = defaultCharset
	}
	return mediaType, charset, nil
}

// isXMLMediaType reports whether mediaType belongs to the xml family,
// including structured syntax suffixes like application/soap+xml.
func isXMLMediaType(mediaType string) bool {
	return mediaType == mimeApplicationXML ||
		mediaType == mimeTextXML ||
		strings.HasSuffix(mediaType, mimeXMLSuffix)
}

func acceptXML(cfg *Config) func(mediaType string) bool {
	return func(mediaType string) bool {
		if isXMLMediaType(mediaType) {
			return true
		}
		return cfg.ContentType != nil && cfg.ContentType(mediaType)
	}
}

func acceptJSON(cfg *Config) func(mediaType string) bool {
	return func(mediaType string) bool {
		if mediaType == mimeJSON || strings.HasSuffix(mediaType, mimeJSONSuffix) {
			return true
		}
		return cfg.ContentType != nil && cfg.ContentType(mediaType)
	}
}

func acceptForm(cfg *Config) func(mediaType string) bool {
	return func(mediaType string) bool {
		if mediaType == mimeForm {
			return true
		}
		return cfg.ContentType != nil && cfg.ContentType(mediaType)
	}
}
