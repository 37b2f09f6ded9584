package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentions(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"no mentions", "great food and clean rooms", []string{}},
		{"single mention", "agree with @priya about the wifi", []string{"priya"}},
		{"several in order", "@rahul @priya have you seen this?", []string{"rahul", "priya"}},
		{"punctuation ends the token", "thanks @rahul!", []string{"rahul"}},
		{"bare at sign is ignored", "meet @ the gate", []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Mentions(c.text))
		})
	}
}
