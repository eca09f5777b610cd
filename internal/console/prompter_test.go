package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/clinic-cli/pkg/errors"
)

func inRange(n int) bool { return n >= 1 && n <= 9 }

func TestReadChoice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     int
		invalids int
	}{
		{name: "first answer", input: "3\n", want: 3},
		{name: "crlf line ending", input: "7\r\n", want: 7},
		{name: "padded number rejected", input: " 5\n5 \n5\n", want: 5, invalids: 2},
		{name: "garbage then number", input: "abc\n\n4x\n9\n", want: 9, invalids: 3},
		{name: "out of range re-prompts", input: "0\n10\n-1\n2\n", want: 2, invalids: 3},
		{name: "last line without newline", input: "oops\n5", want: 5, invalids: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.ReadChoice(context.Background(), inRange)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.invalids, strings.Count(out.String(), invalidChoice))
			assert.Equal(t, tt.invalids+1, strings.Count(out.String(), choicePrompt))
		})
	}
}

func TestReadChoiceEndOfInput(t *testing.T) {
	p := NewPrompter(strings.NewReader("x\ny\n"), io.Discard)

	_, err := p.ReadChoice(context.Background(), inRange)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadChoiceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1\n"), &out)

	_, err := p.ReadChoice(ctx, inRange)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestReadChoiceMaxAttempts(t *testing.T) {
	p := NewPrompter(strings.NewReader("a\nb\nc\n1\n"), io.Discard)
	p.MaxAttempts = 2

	_, err := p.ReadChoice(context.Background(), inRange)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.True(t, apperrors.Is(err, apperrors.ErrInput))
}

func TestField(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("O'Brien \r\n\n"), &out)

	got, err := p.Field("Enter Doctor name")
	require.NoError(t, err)
	assert.Equal(t, "O'Brien ", got)

	empty, err := p.Field("Enter Doctor specialty")
	require.NoError(t, err)
	assert.Equal(t, "", empty)

	assert.Equal(t, "\tEnter Doctor name: \tEnter Doctor specialty: ", out.String())

	_, err = p.Field("Enter Doctor Department ID")
	assert.ErrorIs(t, err, io.EOF)
}
