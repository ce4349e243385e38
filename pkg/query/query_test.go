// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qiminglab/mingyuan/pkg/query"
)

/*
TestStringSlice verifies comma-separated list parsing.
*/
func TestStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "梓", []string{"梓"}},
		{"multiple", "梓,涵,轩", []string{"梓", "涵", "轩"}},
		{"whitespace_trimmed", " 梓 , 涵 ", []string{"梓", "涵"}},
		{"empty_entries_dropped", "梓,,涵,", []string{"梓", "涵"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.StringSlice(tt.input))
		})
	}
}

/*
TestDedup verifies order-preserving deduplication.
*/
func TestDedup(t *testing.T) {
	assert.Equal(t, []string{"梓", "涵"}, query.Dedup([]string{"梓", "涵", "梓"}))
	assert.Equal(t, []string{"梓"}, query.Dedup([]string{"梓"}))
	assert.Nil(t, query.Dedup(nil))
}
