// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody

import (
	"net/http"

	"trpc.group/trpc-go/xmlbody/errs"
)

// extraction error code => http status code
var httpStatusMap = map[int]int{
	errs.CodeContentType:        http.StatusUnsupportedMediaType,
	errs.CodePayloadTooLarge:    http.StatusRequestEntityTooLarge,
	errs.CodeOverflow:           http.StatusRequestEntityTooLarge,
	errs.CodeTransport:          http.StatusBadRequest,
	errs.CodeCharsetUnsupported: http.StatusUnsupportedMediaType,
	errs.CodeCharsetDecode:      http.StatusBadRequest,
	errs.CodeDeserialize:        http.StatusBadRequest,
	errs.CodeConfigInvalid:      http.StatusInternalServerError,
	errs.CodePipelineDone:       http.StatusInternalServerError,
}

// StatusCode returns the HTTP status for an extraction error.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if status, ok := httpStatusMap[errs.Code(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorHandler renders an extraction error to the response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler writes the mapped status code with the structured error
// message as plain text.
var DefaultErrorHandler ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, errs.Msg(err), StatusCode(err))
}

// Handle wraps a typed handler. Extraction failures are rendered by
// DefaultErrorHandler before h ever runs.
func Handle[T any](h func(w http.ResponseWriter, r *http.Request, body *T), opts ...Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		x, err := FromRequest[T](r, opts...)
		if err != nil {
			DefaultErrorHandler(w, r, err)
			return
		}
		h(w, r, &x.Value)
	}
}
