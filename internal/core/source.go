package core

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/kmehta/moodlint/pkg/text"
)

var (
	regexComment  = regexp.MustCompile(`^\s*(#+|//+)\s*`)
	regexFunction = regexp.MustCompile(`^\s*(?:def|func)\s+(\w+)`)
	regexVariable = regexp.MustCompile(`^(\w+)\s*:?=[^=]`)
	regexTodo     = regexp.MustCompile(`(?i)\b(todo|fixme)\b`)
)

// SourceContext collects what a source file reveals about its author:
// the free text lives in comments, the structure in names.
type SourceContext struct {
	Comments  []string
	Functions []string
	Variables []string
	TodoItems []string
}

// Metrics summarizes a source context with a few counters.
type Metrics struct {
	CommentCount  int `json:"comments" yaml:"comments"`
	FunctionCount int `json:"functions" yaml:"functions"`
	TodoCount     int `json:"todos" yaml:"todos"`
}

func (c *SourceContext) Metrics() Metrics {
	return Metrics{
		CommentCount:  len(c.Comments),
		FunctionCount: len(c.Functions),
		TodoCount:     len(c.TodoItems),
	}
}

// CommentText returns all comments as a single text sample for
// classification.
func (c *SourceContext) CommentText() string {
	return strings.Join(c.Comments, " ")
}

func (c *SourceContext) appendComment(comment string) {
	c.Comments = append(c.Comments, comment)
	if regexTodo.MatchString(comment) {
		c.TodoItems = append(c.TodoItems, comment)
	}
}

// ParseSource extracts comments, function names, and variable assignments
// from raw source text. Line comments starting with # or // are
// recognized, which covers the scripting languages the tool targets.
func ParseSource(source string) *SourceContext {
	context := &SourceContext{}

	scanner := bufio.NewScanner(strings.NewReader(source))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if text.IsBlank(line) {
			continue
		}

		if regexComment.MatchString(line) {
			comment := regexComment.ReplaceAllString(line, "")
			if !text.IsBlank(comment) {
				context.appendComment(comment)
			}
			continue
		}

		// Trailing comments also carry tone ("x = 42  # why 42?")
		if index := strings.Index(line, "#"); index > 0 {
			comment := strings.TrimSpace(line[index+1:])
			if !text.IsBlank(comment) {
				context.appendComment(comment)
			}
		}

		if match := regexFunction.FindStringSubmatch(line); match != nil {
			context.Functions = append(context.Functions, match[1])
		} else if match := regexVariable.FindStringSubmatch(line); match != nil {
			context.Variables = append(context.Variables, match[1])
		}
	}

	return context
}
