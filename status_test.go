// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package xmlbody_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"trpc.group/trpc-go/xmlbody"
	"trpc.group/trpc-go/xmlbody/errs"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{errs.CodeContentType, http.StatusUnsupportedMediaType},
		{errs.CodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{errs.CodeOverflow, http.StatusRequestEntityTooLarge},
		{errs.CodeTransport, http.StatusBadRequest},
		{errs.CodeCharsetUnsupported, http.StatusUnsupportedMediaType},
		{errs.CodeCharsetDecode, http.StatusBadRequest},
		{errs.CodeDeserialize, http.StatusBadRequest},
		{errs.CodeConfigInvalid, http.StatusInternalServerError},
		{errs.CodePipelineDone, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, xmlbody.StatusCode(errs.New(tt.code, "boom")))
	}

	assert.Equal(t, http.StatusOK, xmlbody.StatusCode(nil))
	assert.Equal(t, http.StatusInternalServerError, xmlbody.StatusCode(errors.New("plain")))
}

func TestDefaultErrorHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/index.html", nil)
	xmlbody.DefaultErrorHandler(rec, r, errs.New(errs.CodeOverflow, "payload exceeds limit 10"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "payload exceeds limit 10")
}
