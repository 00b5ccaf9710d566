package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sandeepkv93/tasklist/internal/filter"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeEdit     Type = "edit"
	TypeDelete   Type = "delete"
	TypeDone     Type = "done"
	TypeFilter   Type = "filter"
	TypeCategory Type = "category"
	TypeSearch   Type = "search"
	TypeTheme    Type = "theme"
	TypeClear    Type = "clear"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries the text and the optional #category tag. Category is empty
// when no tag was given.
type AddArgs struct {
	Text     string
	Category string
}

// EditArgs addresses a task by its 1-based row in the current view.
type EditArgs struct {
	Row      int
	Text     string
	Category string
}

type RowArgs struct {
	Row int
}

type FilterArgs struct {
	Status filter.Status
}

type CategoryArgs struct {
	Name string
}

type SearchArgs struct {
	Term string
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Edit     *EditArgs
	Row      *RowArgs
	Filter   *FilterArgs
	Category *CategoryArgs
	Search   *SearchArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]
	rest := strings.TrimSpace(raw[len(parts[0]):])

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeEdit:
		return parseEdit(input, args, rest)
	case TypeDelete, TypeDone:
		return parseRow(input, Type(head), args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeCategory:
		return parseCategory(input, args)
	case TypeSearch:
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Term: strings.Join(args, " ")}}, nil
	case TypeTheme, TypeClear:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, rest string) (Command, error) {
	text, category := SplitTaskInput(rest)
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text, Category: category}}, nil
}

func parseEdit(raw string, args []string, rest string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires a row number and text"}
	}
	row, err := parseRowNumber(args[0])
	if err != nil {
		return Command{}, err
	}
	text, category := SplitTaskInput(rest[len(args[0]):])
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires task text"}
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{Row: row, Text: text, Category: category}}, nil
}

func parseRow(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a row number", typ)}
	}
	row, err := parseRowNumber(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: typ, Raw: raw, Row: &RowArgs{Row: row}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires one of all, active, completed"}
	}
	status, err := filter.ParseStatus(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Status: status}}, nil
}

func parseCategory(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "category requires a name or all"}
	}
	name := strings.ToLower(strings.TrimPrefix(args[0], "#"))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "category requires a name or all"}
	}
	return Command{Type: TypeCategory, Raw: raw, Category: &CategoryArgs{Name: name}}, nil
}

func parseRowNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid row number: %s", s)}
	}
	return n, nil
}

var categoryTag = regexp.MustCompile(`^#\pL[\pL\pN_-]*$`)

// SplitTaskInput cuts a trailing "#tag" off input and returns the remaining
// text trimmed but otherwise as typed. A tag starts with a letter, so "#101"
// stays part of the text.
func SplitTaskInput(input string) (text, category string) {
	text = strings.TrimSpace(input)
	start := strings.LastIndexAny(text, " \t") + 1
	if last := text[start:]; categoryTag.MatchString(last) {
		return strings.TrimSpace(text[:start]), strings.ToLower(last[1:])
	}
	return text, ""
}
