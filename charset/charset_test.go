// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package charset_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"

	"trpc.group/trpc-go/xmlbody"
	"trpc.group/trpc-go/xmlbody/charset"
	"trpc.group/trpc-go/xmlbody/errs"
)

type Info struct {
	Username string `xml:"username"`
}

func newRequest(contentType string, body []byte) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/index.html", bytes.NewReader(body))
	r.Header.Set("Content-Type", contentType)
	return r
}

func TestResolve(t *testing.T) {
	d, err := charset.Resolve("gbk")
	require.Nil(t, err)
	require.NotNil(t, d)

	// aliases of the WHATWG index resolve too
	_, err = charset.Resolve("latin1")
	assert.Nil(t, err)

	_, err = charset.Resolve("not-a-charset")
	assert.NotNil(t, err)
}

func TestDecodeGBK(t *testing.T) {
	utf8Body := "<Info><username>世界</username></Info>"
	gbkBody, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(utf8Body))
	require.Nil(t, err)
	require.NotEqual(t, []byte(utf8Body), gbkBody)

	x, err := xmlbody.FromRequest[Info](newRequest("application/xml; charset=gbk", gbkBody))
	require.Nil(t, err)
	assert.Equal(t, "世界", x.Value.Username)
}

func TestDecodeUTF16(t *testing.T) {
	utf8Body := "<Info><username>alice</username></Info>"
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	utf16Body, err := enc.Bytes([]byte(utf8Body))
	require.Nil(t, err)

	x, err := xmlbody.FromRequest[Info](newRequest("application/xml; charset=utf-16le", utf16Body))
	require.Nil(t, err)
	assert.Equal(t, "alice", x.Value.Username)
}

func TestUnknownCharset(t *testing.T) {
	_, err := xmlbody.FromRequest[Info](newRequest("application/xml; charset=klingon", []byte("<Info></Info>")))
	assert.Equal(t, errs.CodeCharsetUnsupported, errs.Code(err))
}

func TestCharsetAppliesBeforeDeserialize(t *testing.T) {
	// malformed markup in a non-UTF-8 body still reports a deserialize
	// error, so decoding must have happened first
	gbkBody, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("<Info><username>世界</Info>"))
	require.Nil(t, err)

	_, err = xmlbody.FromRequest[Info](newRequest("application/xml; charset=gbk", gbkBody))
	assert.Equal(t, errs.CodeDeserialize, errs.Code(err))
}
