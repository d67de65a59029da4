package internal

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	testCases := []struct {
		title    string
		input    string
		expected []string
	}{
		{
			title:    "empty input",
			input:    "",
			expected: []string{},
		},
		{
			title:    "single entry",
			input:    "localhost:19092",
			expected: []string{"localhost:19092"},
		},
		{
			title:    "multiple entries with whitespace",
			input:    " a:9092 , b:9092,c:9092 ",
			expected: []string{"a:9092", "b:9092", "c:9092"},
		},
		{
			title:    "empty entries",
			input:    "a:9092,, ,b:9092,",
			expected: []string{"a:9092", "b:9092"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			actual := SplitList(tc.input)
			if !reflect.DeepEqual(actual, tc.expected) {
				t.Errorf("Expected: %v, Actual: %v", tc.expected, actual)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	testCases := []struct {
		title    string
		err      error
		expected string
	}{
		{
			title: "nil error",
		},
		{
			title: "empty message",
			err:   errors.New(""),
		},
		{
			title:    "lower case message",
			err:      errors.New("cluster metadata unavailable"),
			expected: "Cluster metadata unavailable",
		},
		{
			title:    "already capitalised",
			err:      errors.New("Failed"),
			expected: "Failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			if actual := Title(tc.err); actual != tc.expected {
				t.Errorf("Expected: %q, Actual: %q", tc.expected, actual)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty(" \t\n") {
		t.Error("Expected whitespace to be empty")
	}
	if IsEmpty(" x ") {
		t.Error("Expected ' x ' not to be empty")
	}
}
