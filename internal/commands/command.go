package commands

import (
	"fmt"
	"strconv"
	"strings"

	"zulaflow/internal/model"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeDone    Type = "done"
	TypeRename  Type = "rename"
	TypeWater   Type = "water"
	TypeFast    Type = "fast"
	TypeEnd     Type = "end"
	TypeShow    Type = "show"
	TypeSteps   Type = "steps"
	TypeImport  Type = "import"
	TypeExport  Type = "export"
	TypeSuggest Type = "suggest"
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

type AddArgs struct {
	Title         string
	Category      string
	Duration      int
	ScheduledTime string
	ScheduledDate string
}

type DoneArgs struct {
	Target string
}

type RenameArgs struct {
	Target string
	Title  string
}

type WaterArgs struct {
	AmountML int
}

type FastArgs struct {
	Plan  model.FastingPlan
	Hours float64
	Name  string
}

type ShowArgs struct {
	Subject string
	Date    string
}

type StepsArgs struct {
	Count int
}

type ImportArgs struct {
	Path string
}

type ExportArgs struct {
	Path string
}

type SuggestArgs struct {
	Goal string
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Done    *DoneArgs
	Rename  *RenameArgs
	Water   *WaterArgs
	Fast    *FastArgs
	Show    *ShowArgs
	Steps   *StepsArgs
	Import  *ImportArgs
	Export  *ExportArgs
	Suggest *SuggestArgs
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

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseDone(input, args)
	case TypeRename:
		return parseRename(input, args)
	case TypeWater:
		return parseWater(input, args)
	case TypeFast:
		return parseFast(input, args)
	case TypeEnd:
		return Command{Type: TypeEnd, Raw: input}, nil
	case TypeShow:
		return parseShow(input, args)
	case TypeSteps:
		return parseSteps(input, args)
	case TypeImport:
		return parseImport(input, args)
	case TypeExport:
		return parseExport(input, args)
	case TypeSuggest:
		return parseSuggest(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd accepts a free-form title with optional trailing modifiers:
// cat:<category>, for:<minutes>, at:<HH:MM>, on:<YYYY-MM-DD>.
func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}

	out := AddArgs{}
	var titleWords []string
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "cat:"):
			out.Category = strings.TrimSpace(arg[len("cat:"):])
		case strings.HasPrefix(lower, "for:"):
			minutes, err := strconv.Atoi(arg[len("for:"):])
			if err != nil || minutes < 0 {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid duration: %s", arg)}
			}
			out.Duration = minutes
		case strings.HasPrefix(lower, "at:"):
			out.ScheduledTime = arg[len("at:"):]
		case strings.HasPrefix(lower, "on:"):
			out.ScheduledDate = arg[len("on:"):]
		default:
			titleWords = append(titleWords, arg)
		}
	}

	out.Title = strings.TrimSpace(strings.Join(titleWords, " "))
	if out.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires a task"}
	}
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{Target: strings.Join(args, " ")}}, nil
}

// parseRename splits on "=>": everything before it picks the task, the
// rest becomes the new title.
func parseRename(raw string, args []string) (Command, error) {
	joined := strings.Join(args, " ")
	parts := strings.SplitN(joined, "=>", 2)
	if len(parts) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires: rename <task> => <new title>"}
	}
	target := strings.TrimSpace(parts[0])
	title := strings.TrimSpace(parts[1])
	if target == "" || title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires: rename <task> => <new title>"}
	}
	return Command{Type: TypeRename, Raw: raw, Rename: &RenameArgs{Target: target, Title: title}}, nil
}

// parseWater reads an amount like "500", "500ml" or "0.5l". Bare numbers
// follow the intake heuristic: small values are liters.
func parseWater(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "water requires an amount"}
	}
	amount, ok := model.ParseWaterML("water " + strings.Join(args, " "))
	if !ok || amount <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid water amount: %s", strings.Join(args, " "))}
	}
	return Command{Type: TypeWater, Raw: raw, Water: &WaterArgs{AmountML: int(amount)}}, nil
}

// parseFast takes a plan name (16:8, 18:6, 20:4, omad) or a custom hour
// count, then an optional session name.
func parseFast(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "fast requires a plan or hour count"}
	}

	out := FastArgs{Name: strings.TrimSpace(strings.Join(args[1:], " "))}
	switch strings.ToLower(args[0]) {
	case "16:8":
		out.Plan = model.Plan16_8
	case "18:6":
		out.Plan = model.Plan18_6
	case "20:4":
		out.Plan = model.Plan20_4
	case "omad":
		out.Plan = model.PlanOMAD
	default:
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil || hours <= 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown fasting plan: %s", args[0])}
		}
		out.Plan = model.PlanCustom
		out.Hours = hours
	}
	return Command{Type: TypeFast, Raw: raw, Fast: &out}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	date := ""
	for _, arg := range args[1:] {
		if strings.HasPrefix(strings.ToLower(arg), "date:") {
			date = strings.TrimSpace(arg[len("date:"):])
		}
	}
	switch subject {
	case "today", "history", "fasting", "stats":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown subject: %s", subject)}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject, Date: date}}, nil
}

func parseSteps(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "steps requires a count"}
	}
	count, err := strconv.Atoi(args[0])
	if err != nil || count <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid step count: %s", args[0])}
	}
	return Command{Type: TypeSteps, Raw: raw, Steps: &StepsArgs{Count: count}}, nil
}

func parseImport(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "import requires a source path"}
	}
	return Command{Type: TypeImport, Raw: raw, Import: &ImportArgs{Path: strings.Join(args, " ")}}, nil
}

func parseExport(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export requires a destination path"}
	}
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Path: strings.Join(args, " ")}}, nil
}

func parseSuggest(raw string, args []string) (Command, error) {
	goal := strings.TrimSpace(strings.Join(args, " "))
	if goal == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "suggest requires a goal"}
	}
	return Command{Type: TypeSuggest, Raw: raw, Suggest: &SuggestArgs{Goal: goal}}, nil
}
