package main

import (
	"fmt"

	"github.com/atomicstack/quickmenu"
)

// The demo models a small game settings menu: a root screen linking to sound
// and control sub-screens, with actions mutating the settings in place.

type settings struct {
	SoundOn     bool
	Volume      int
	InvertY     bool
	Sensitivity int
}

type action int

const (
	actSoundToggle action = iota
	actVolumeUp
	actVolumeDown
	actInvertToggle
	actSensitivityUp
	actSensitivityDown
)

type screen int

const (
	screenRoot screen = iota
	screenSound
	screenControls
)

// demoEvent surfaces state changes to the host, mirroring how a game would
// react to menu-driven settings updates.
type demoEvent struct {
	Change string
}

func resolveScreen(s screen, st *settings) quickmenu.Menu[action, screen] {
	switch s {
	case screenSound:
		return soundMenu(st)
	case screenControls:
		return controlsMenu(st)
	default:
		return rootMenu(st)
	}
}

func rootMenu(_ *settings) quickmenu.Menu[action, screen] {
	return quickmenu.NewMenu[action, screen]("root").
		Headline("Settings").
		Screen("Sound", screenSound).WithIcon(quickmenu.IconSound).
		Screen("Controls", screenControls).WithIcon(quickmenu.IconControls)
}

func soundMenu(st *settings) quickmenu.Menu[action, screen] {
	label := "Sound on"
	if st.SoundOn {
		label = "Sound off"
	}
	m := quickmenu.NewMenu[action, screen]("sound").
		Headline("Sound").
		RichText(quickmenu.RichTextEntry{Text: fmt.Sprintf("Volume %d%%", st.Volume)}).
		Action(label, actSoundToggle).WithIcon(quickmenu.IconSound)
	if st.SoundOn {
		m = m.
			Action("Volume up", actVolumeUp).
			Action("Volume down", actVolumeDown)
	}
	return m
}

func controlsMenu(st *settings) quickmenu.Menu[action, screen] {
	invert := "Invert Y axis: off"
	if st.InvertY {
		invert = "Invert Y axis: on"
	}
	return quickmenu.NewMenu[action, screen]("controls").
		Headline("Controls").
		RichText(quickmenu.RichTextEntry{Text: fmt.Sprintf("Sensitivity %d", st.Sensitivity)}).
		Action(invert, actInvertToggle).WithIcon(quickmenu.IconControls).
		Action("Sensitivity up", actSensitivityUp).
		Action("Sensitivity down", actSensitivityDown)
}

func handleAction(a action, st *settings, events *quickmenu.EventWriter[demoEvent]) {
	switch a {
	case actSoundToggle:
		st.SoundOn = !st.SoundOn
		events.Send(demoEvent{Change: "sound"})
	case actVolumeUp:
		if st.Volume < 100 {
			st.Volume += 10
			events.Send(demoEvent{Change: "volume"})
		}
	case actVolumeDown:
		if st.Volume > 0 {
			st.Volume -= 10
			events.Send(demoEvent{Change: "volume"})
		}
	case actInvertToggle:
		st.InvertY = !st.InvertY
		events.Send(demoEvent{Change: "invert-y"})
	case actSensitivityUp:
		st.Sensitivity++
		events.Send(demoEvent{Change: "sensitivity"})
	case actSensitivityDown:
		if st.Sensitivity > 0 {
			st.Sensitivity--
			events.Send(demoEvent{Change: "sensitivity"})
		}
	}
}
