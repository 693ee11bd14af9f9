package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Done    func(DoneArgs) (Result, error)
	Rename  func(RenameArgs) (Result, error)
	Water   func(WaterArgs) (Result, error)
	Fast    func(FastArgs) (Result, error)
	End     func() (Result, error)
	Show    func(ShowArgs) (Result, error)
	Steps   func(StepsArgs) (Result, error)
	Import  func(ImportArgs) (Result, error)
	Export  func(ExportArgs) (Result, error)
	Suggest func(SuggestArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	case TypeRename:
		if handlers.Rename == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "rename handler not configured"}
		}
		return handlers.Rename(*cmd.Rename)
	case TypeWater:
		if handlers.Water == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "water handler not configured"}
		}
		return handlers.Water(*cmd.Water)
	case TypeFast:
		if handlers.Fast == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "fast handler not configured"}
		}
		return handlers.Fast(*cmd.Fast)
	case TypeEnd:
		if handlers.End == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "end handler not configured"}
		}
		return handlers.End()
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	case TypeSteps:
		if handlers.Steps == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "steps handler not configured"}
		}
		return handlers.Steps(*cmd.Steps)
	case TypeImport:
		if handlers.Import == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "import handler not configured"}
		}
		return handlers.Import(*cmd.Import)
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "export handler not configured"}
		}
		return handlers.Export(*cmd.Export)
	case TypeSuggest:
		if handlers.Suggest == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "suggest handler not configured"}
		}
		return handlers.Suggest(*cmd.Suggest)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
