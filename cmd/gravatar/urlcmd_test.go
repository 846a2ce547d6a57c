package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/function61/gokit/testing/assert"
	"github.com/function61/gravatar/pkg/gravatar"
)

func TestGenerateUrls(t *testing.T) {
	output := &bytes.Buffer{}

	err := generateUrls(
		[]string{"helllo@holllo.cc"},
		gravatar.DefaultBaseURL,
		false,
		gravatar.Options{Size: 80},
		false,
		nil,
		output)
	assert.Ok(t, err)

	assert.Equal(t, output.String(), "https://www.gravatar.com/avatar/ebff9105dce4954b1bdb57fdab079ff3?size=80\n")
}

func TestGenerateUrlsFromStdin(t *testing.T) {
	stdin := strings.NewReader("helllo@holllo.cc\nme@bauke.xyz\n")
	output := &bytes.Buffer{}

	err := generateUrls(
		[]string{"-"},
		gravatar.DefaultBaseURL,
		true,
		gravatar.Options{},
		false,
		stdin,
		output)
	assert.Ok(t, err)

	assert.Equal(t, output.String(), strings.Join([]string{
		"https://www.gravatar.com/avatar/ebff9105dce4954b1bdb57fdab079ff3.jpg",
		"https://www.gravatar.com/avatar/ecd836ee843ff0ab75d4720bd40c2baf.jpg",
		"",
	}, "\n"))
}

func TestGenerateUrlsJson(t *testing.T) {
	output := &bytes.Buffer{}

	err := generateUrls(
		[]string{"helllo@holllo.cc"},
		gravatar.DefaultBaseURL,
		false,
		gravatar.Options{Default: gravatar.DefaultIdenticon},
		true,
		nil,
		output)
	assert.Ok(t, err)

	doc := urlDocument{}
	assert.Ok(t, json.Unmarshal(output.Bytes(), &doc))

	assert.Equal(t, doc.Email, "helllo@holllo.cc")
	assert.Equal(t, doc.Hash, "ebff9105dce4954b1bdb57fdab079ff3")
	assert.Equal(t, doc.Url, "https://www.gravatar.com/avatar/ebff9105dce4954b1bdb57fdab079ff3?default=identicon")
}
