package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("E102")

	if err.Code != "E102" || err.Category != CategoryConfig {
		t.Errorf("unexpected error %+v", err)
	}
	if !strings.Contains(err.Error(), "Invalid port") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestWrapAndIs(t *testing.T) {
	err := New("E100").Wrap(fs.ErrNotExist)

	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("expected wrapped cause to match")
	}
	if !stderrors.Is(err, New("E100")) {
		t.Error("expected code match")
	}
	if stderrors.Is(err, New("E101")) {
		t.Error("different codes must not match")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E200") != nil {
		t.Error("nil in, nil out")
	}

	orig := New("E201")
	if FromError(orig, "E200") != orig {
		t.Error("existing *Error should be returned as is")
	}

	wrapped := FromError(stderrors.New("boom"), "E200")
	if wrapped.Code != "E200" || wrapped.Wrapped == nil {
		t.Errorf("unexpected %+v", wrapped)
	}
	if Code(wrapped) != "E200" {
		t.Errorf("Code() = %q", Code(wrapped))
	}
	if Code(stderrors.New("plain")) != "" {
		t.Error("plain errors have no code")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("E101").
		WithDetail("Failed to parse bfkr.json").
		Wrap(stderrors.New("unexpected EOF")).
		Format()

	for _, want := range []string{"ERROR E101: Invalid configuration file", "Failed to parse bfkr.json", "caused by: unexpected EOF", "Hint: Check the file syntax"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 10)
	if len(lines) != 2 || lines[0] != "one two" || lines[1] != "three four" {
		t.Errorf("wrapText = %q", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should produce no lines")
	}
}
