package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func runRoot(args ...string) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func TestGenerateRequiresProspectFlags(t *testing.T) {
	err := runRoot("generate", "--name", "Jane Doe")

	assert.Equal(t, true, err != nil)
	assert.Equal(t, true, strings.Contains(err.Error(), "required flag(s)"))
	assert.Equal(t, true, strings.Contains(err.Error(), "company"))
}

func TestNewsRequiresCompany(t *testing.T) {
	err := runRoot("news")

	assert.Equal(t, true, err != nil)
}

func TestCompanyRejectsExtraArgs(t *testing.T) {
	err := runRoot("company", "Acme", "Globex")

	assert.Equal(t, true, err != nil)
}
