package tui

// KeyBinding associates a key pattern with a handler that runs before the
// event reaches the focused node.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
	Stop    bool // the event goes no further once this binding fires
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // specific key, or KeyNone
	Rune          rune     // specific character, or 0
	AnyRune       bool     // any character
	Mod           Modifier // when non-zero the event must carry exactly these
	RequireNoMods bool
}

// OnKey binds key, letting the event continue to the focused node.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler}
}

// OnKeyStop binds key and stops the event.
func OnKeyStop(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler, Stop: true}
}

func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Handler: handler}
}

func OnRuneStop(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Handler: handler, Stop: true}
}

// OnChordStop binds a character with modifiers, such as Ctrl+Q, and stops
// the event.
func OnChordStop(r rune, mod Modifier, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r, Mod: mod}, Handler: handler, Stop: true}
}

func (p KeyPattern) matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != ModNone {
		return false
	}
	if p.Mod != ModNone && ke.Mod != p.Mod {
		return false
	}
	switch {
	case p.AnyRune && ke.Key == KeyRune:
		return true
	case p.Rune != 0 && ke.Key == KeyRune && ke.Rune == p.Rune:
		return true
	case p.Key != KeyNone && ke.Key == p.Key:
		return true
	}
	return false
}

// keyTable holds global bindings in registration order.
type keyTable struct {
	entries []KeyBinding
}

// add appends bindings. Two Stop bindings for the same pattern are
// ambiguous and rejected, leaving the table unchanged.
func (t *keyTable) add(bindings ...KeyBinding) error {
	stops := make(map[KeyPattern]bool)
	for _, b := range t.entries {
		if b.Stop {
			stops[b.Pattern] = true
		}
	}
	for _, b := range bindings {
		if b.Handler == nil {
			return newError(KindInvalid, "binding %+v has no handler", b.Pattern)
		}
		if !b.Stop {
			continue
		}
		if stops[b.Pattern] {
			return newError(KindInvalid, "conflicting stop bindings for %+v", b.Pattern)
		}
		stops[b.Pattern] = true
	}
	t.entries = append(t.entries, bindings...)
	return nil
}

// dispatch runs matching handlers in order and reports whether a Stop
// binding fired.
func (t *keyTable) dispatch(ke KeyEvent) (fired, stopped bool) {
	for _, b := range t.entries {
		if !b.Pattern.matches(ke) {
			continue
		}
		b.Handler(ke)
		fired = true
		if b.Stop {
			return true, true
		}
	}
	return fired, false
}

// Bind registers global key bindings. They see every key event before the
// focused node does.
func (c *Core) Bind(bindings ...KeyBinding) error {
	return c.keys.add(bindings...)
}
