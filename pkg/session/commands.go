package session

import "fmt"

// Action names a user-triggered workspace command.
type Action int

const (
	ActionSelect Action = iota
	ActionNewFile
	ActionNewFolder
	ActionRename
	ActionDeleteFile
	ActionDeleteFolder
	ActionSetLanguage
	ActionSaveAll
	ActionToggleFolder
)

// String returns the action's display name.
func (a Action) String() string {
	switch a {
	case ActionSelect:
		return "select"
	case ActionNewFile:
		return "new-file"
	case ActionNewFolder:
		return "new-folder"
	case ActionRename:
		return "rename"
	case ActionDeleteFile:
		return "delete-file"
	case ActionDeleteFolder:
		return "delete-folder"
	case ActionSetLanguage:
		return "set-language"
	case ActionSaveAll:
		return "save-all"
	case ActionToggleFolder:
		return "toggle-folder"
	default:
		return "unknown"
	}
}

// Command is a named action with its typed payload. Path is the primary
// target (file id or folder path); To carries the rename destination;
// Language the selector value.
type Command struct {
	Action   Action
	Path     string
	To       string
	Language string
}

// Dispatch routes a command to the matching session operation. Rendering is
// the caller's concern; by the time Dispatch returns, store and cache are
// consistent.
func (s *Session) Dispatch(cmd Command) error {
	switch cmd.Action {
	case ActionSelect:
		return s.SetCurrent(cmd.Path)
	case ActionNewFile:
		return s.CreateFile(cmd.Path)
	case ActionNewFolder:
		return s.CreateFolder(cmd.Path)
	case ActionRename:
		return s.Rename(cmd.Path, cmd.To)
	case ActionDeleteFile:
		return s.DeleteFile(cmd.Path)
	case ActionDeleteFolder:
		_, err := s.DeleteFolder(cmd.Path)
		return err
	case ActionSetLanguage:
		return s.SetLanguage(cmd.Path, cmd.Language)
	case ActionSaveAll:
		s.SaveAll()
		return nil
	case ActionToggleFolder:
		s.ToggleFolder(cmd.Path)
		return nil
	default:
		return fmt.Errorf("unknown command action %d", cmd.Action)
	}
}
