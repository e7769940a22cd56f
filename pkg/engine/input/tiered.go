// Package input turns device key codes into preview actions in layers:
// raw device events, debounced events, bindings and finally intents.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
)

// Action represents a high‑level intent in the preview window.
type Action int

const (
	ActionNone Action = iota

	ActionRegenerate  // Next seed, same mission
	ActionNextMission // Next mission type, same seed
	ActionDevMap      // Show the hard-coded developer map
	ActionScreenshot  // Save an HTML screenshot
	ActionDump        // Write the text map dump
	ActionZoomIn      // Larger cells
	ActionZoomOut     // Smaller cells
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "r", "escape", "gamepad_a").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's just-pressed query already debounces, but the distinct type keeps
// the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"r":     ActionRegenerate,
	"space": ActionRegenerate,
	"m":     ActionNextMission,
	"f9":    ActionDevMap,
	"p":     ActionScreenshot,
	"d":     ActionDump,

	// Zoom (fixed bindings)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,

	"q":      ActionQuit,
	"escape": ActionQuit,

	// Controller/gamepad specific bindings
	"gamepad_a":     ActionRegenerate, // A button / Cross
	"gamepad_y":     ActionNextMission,
	"gamepad_b":     ActionQuit, // B button / Circle
	"gamepad_start": ActionDevMap,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Codes returns every bound code in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(bindings))
	for c := range bindings {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionRegenerate:
		return "Regenerate"
	case ActionNextMission:
		return "Next Mission"
	case ActionDevMap:
		return "Dev Map"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDump:
		return "Dump"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so the help line doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Escape always stays bound to ActionQuit.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if c == "escape" {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && code != "escape" {
		bindings[code] = action
	}
}
