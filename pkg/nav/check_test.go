package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckClean(t *testing.T) {
	fs := blogNavbar().Check()
	assert.Empty(t, fs)
	assert.NoError(t, fs.Err())
}

func TestCheckFindings(t *testing.T) {
	nb := New(
		Leaf(""),
		Group("", icon, "/posts"),
		Group("博客", icon, "/posts/",
			Item("", icon, "hertz"),
			Item("Hertz", icon, "hertz"),
			Item("no link", icon, ""),
		),
	)

	fs := nb.Check()
	require.NotEmpty(t, fs)

	byLoc := map[string][]string{}
	for _, f := range fs {
		byLoc[f.Location] = append(byLoc[f.Location], f.Message)
	}

	assert.Equal(t, []string{"empty link identifier"}, byLoc["[0]"])
	assert.ElementsMatch(t, []string{
		"group has no text",
		"group has no children",
		`prefix "/posts" does not end with /`,
	}, byLoc["[1]"])
	assert.Equal(t, []string{"link item has no text"}, byLoc["[2].children[0]"])
	assert.Equal(t, []string{"path /posts/hertz already used at [2].children[0]"}, byLoc["[2].children[1]"])
	assert.Contains(t, byLoc["[2].children[2]"], "link item has no link")

	assert.Equal(t, 4, fs.Errors())
	err := fs.Err()
	assert.ErrorIs(t, err, ErrFindings)
	assert.Contains(t, err.Error(), "4 error(s)")
}
