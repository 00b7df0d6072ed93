package engine

// transform.go is the engine's orchestrator: one call to OnKey per physical
// keystroke, one Directive back. Every transformation follows the same
// speculative-apply-then-validate pattern (spec §4.6): tentatively mutate
// the buffer, check the result is still a structurally valid Vietnamese
// syllable, and roll back if not. This is how English words survive
// untransformed with no dictionary involved.

// Action tells the host what to do with a Directive.
type Action uint8

const (
	// ActionNone means nothing changed; the host does nothing.
	ActionNone Action = iota

	// ActionSend means the host must delete Backspace characters immediately
	// before the caret, then insert Chars[:Count].
	ActionSend
)

// Directive is the fixed-size result handed back across the engine
// boundary. Its layout is deliberately FFI-stable: a caller on the other
// side of a narrow interface (D-Bus, a C ABI, a plugin host) can treat it as
// a flat struct with no pointers or variable-length fields.
type Directive struct {
	Chars     [MaxBuffer]rune
	Action    Action
	Backspace uint8
	Count     uint8
	_pad      uint8
}

func noneDirective() Directive {
	return Directive{Action: ActionNone}
}

func sendDirective(backspace int, chars []rune) Directive {
	d := Directive{Action: ActionSend, Backspace: uint8(backspace), Count: uint8(len(chars))}
	copy(d.Chars[:], chars)
	return d
}

// TransformKind tags what kind of modifier the engine most recently applied,
// so a repeated trigger key can be recognized as a revert rather than a
// second application (spec §4.6.4).
type TransformKind uint8

const (
	TransformNone TransformKind = iota
	TransformStroke
	TransformTone
	TransformMark
	TransformWAsVowel
	TransformWShortcutSkipped
)

// LastTransform records enough about the most recent modifier application to
// undo it if the same trigger key is pressed again.
type LastTransform struct {
	Kind     TransformKind
	Position int
	Key      Key
}

// Engine is the per-syllable transformation state machine (spec §3's "engine
// state"). It is not safe for concurrent use; callers that share an Engine
// across goroutines must guard it with their own mutex (spec §5).
type Engine struct {
	buf           Buffer
	cfg           EngineConfig
	method        Method
	enabled       bool
	lastTransform LastTransform
	shortcuts     *ShortcutTable
}

// NewEngine returns a ready-to-use engine with default configuration.
func NewEngine() *Engine {
	return &Engine{
		cfg:       DefaultConfig(),
		method:    MethodFor(0),
		enabled:   true,
		shortcuts: NewShortcutTable(),
	}
}

// SetMethod switches the active typing convention and clears the buffer,
// since a half-typed syllable in one convention is meaningless in the other.
func (e *Engine) SetMethod(id int) {
	e.cfg.Method = id
	e.method = MethodFor(id)
	e.Clear()
}

// CurrentMethod returns the active typing convention id.
func (e *Engine) CurrentMethod() int {
	return e.method.ID()
}

// SetToneRule selects the tone-placement convention.
func (e *Engine) SetToneRule(rule ToneRule) {
	e.cfg.ToneRule = rule
}

// SetEnabled toggles the engine globally. Disabling clears the buffer (spec
// §6: "set_enabled"). While disabled, OnKey passes every key through and
// shortcuts do not fire either.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
	if !enabled {
		e.Clear()
	}
}

// Enabled reports whether the engine is currently active.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// Clear empties the in-progress buffer and forgets the last transform.
func (e *Engine) Clear() {
	e.buf.Clear()
	e.lastTransform = LastTransform{}
}

// Shortcuts returns the mutable shortcut table (spec §6: "shortcuts_mut").
func (e *Engine) Shortcuts() *ShortcutTable {
	return e.shortcuts
}

// Preedit returns the text currently buffered, rendered as it would appear
// on screen. Hosts that need to repaint (rather than incrementally apply
// Directives) can use this directly.
func (e *Engine) Preedit() string {
	runes := make([]rune, 0, e.buf.Len())
	for i := 0; i < e.buf.Len(); i++ {
		if r := RenderChar(*e.buf.At(i)); r != 0 {
			runes = append(runes, r)
		}
	}
	return string(runes)
}

// OnKey processes one physical keystroke and returns the edit directive the
// host must apply (spec §6's external keystroke/directive contract).
func (e *Engine) OnKey(key Key, caps, ctrl, shift bool) Directive {
	if !e.enabled || ctrl {
		e.Clear()
		return noneDirective()
	}

	switch key {
	case KeySpace:
		d := e.tryWordBoundaryShortcut(true)
		e.Clear()
		return d
	case KeyReturn:
		d := e.tryWordBoundaryShortcut(false)
		e.Clear()
		return d
	case KeyDelete:
		e.buf.Pop()
		e.lastTransform = LastTransform{}
		return noneDirective()
	}

	if IsBreak(key) {
		e.Clear()
		return noneDirective()
	}

	return e.process(key, caps, shift)
}

// process runs the modifier-detection pipeline in spec §4.6's fixed order:
// stroke, tone, mark, remove, w-as-vowel, then a plain literal.
func (e *Engine) process(key Key, caps, shift bool) Directive {
	// A VNI user holding Shift over a digit wants the literal shifted
	// symbol, not a tone modifier.
	if e.method.ID() == 1 && shift && IsNumber(key) {
		return e.handleLiteral(key, caps)
	}

	if e.method.IsStroke(key) {
		if d, ok := e.tryStroke(key, caps); ok {
			return d
		}
	}

	if tone, targets, ok := e.method.ToneFor(key); ok {
		if d, ok := e.tryTone(key, caps, tone, targets); ok {
			return d
		}
	}

	if mark, ok := e.method.MarkFor(key); ok {
		if d, ok := e.tryMark(key, caps, mark); ok {
			return d
		}
	}

	if e.method.IsRemove(key) {
		if d, ok := e.tryRemove(key); ok {
			return d
		}
	}

	if e.method.IsWAsVowelTrigger(key) {
		if d, ok := e.tryWAsVowel(key, caps); ok {
			return d
		}
	}

	return e.handleLiteral(key, caps)
}

// rebuildFrom renders the buffer from pos to its current end and reports how
// many previously committed characters (from pos through the old end,
// oldLen) the host must delete first. Every transformation computes oldLen
// before mutating the buffer's length.
func (e *Engine) rebuildFrom(pos, oldLen int) Directive {
	backspace := oldLen - pos
	if backspace < 0 {
		backspace = 0
	}
	var chars []rune
	for i := pos; i < e.buf.Len(); i++ {
		if r := RenderChar(*e.buf.At(i)); r != 0 {
			chars = append(chars, r)
		}
	}
	if len(chars) == 0 && backspace == 0 {
		return noneDirective()
	}
	return sendDirective(backspace, chars)
}

// collectVowels snapshots the buffer's vowels as phonology descriptors.
func (e *Engine) collectVowels() []Vowel {
	idxs := e.buf.FindVowels()
	vowels := make([]Vowel, len(idxs))
	for i, idx := range idxs {
		c := e.buf.At(idx)
		vowels[i] = Vowel{Key: c.Key, Tone: c.Tone, Position: idx}
	}
	return vowels
}

func (e *Engine) hasQuInitial() bool {
	if e.buf.Len() < 2 {
		return false
	}
	return e.buf.At(0).Key == KeyQ && e.buf.At(1).Key == KeyU
}

func (e *Engine) hasFinalConsonant(lastVowelPos int) bool {
	for i := lastVowelPos + 1; i < e.buf.Len(); i++ {
		if IsConsonant(e.buf.At(i).Key) {
			return true
		}
	}
	return false
}

func keyInList(k Key, list []Key) bool {
	for _, c := range list {
		if c == k {
			return true
		}
	}
	return false
}

// tryStroke applies or reverts the đ-stroke modifier on the first
// unstroked 'd' in the buffer.
func (e *Engine) tryStroke(key Key, caps bool) (Directive, bool) {
	oldLen := e.buf.Len()

	// A stroked d is only picked when it is the one the previous keystroke
	// stroked, so that pressing the trigger again reverts it.
	idx := -1
	for i := 0; i < e.buf.Len(); i++ {
		c := e.buf.At(i)
		if c.Key == KeyD && (!c.Stroke || (e.lastTransform.Kind == TransformStroke && e.lastTransform.Position == i)) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Directive{}, false
	}

	c := e.buf.At(idx)
	if c.Stroke {
		if e.lastTransform.Kind == TransformStroke && e.lastTransform.Position == idx {
			c.Stroke = false
			e.buf.Push(NewChar(key, caps))
			e.lastTransform = LastTransform{}
			return e.rebuildFrom(idx, oldLen), true
		}
		return Directive{}, false
	}

	hasVowel := len(e.buf.FindVowels()) > 0
	c.Stroke = true
	if hasVowel && !IsValid(e.buf.Keys()) {
		c.Stroke = false
		return Directive{}, false
	}

	e.lastTransform = LastTransform{Kind: TransformStroke, Position: idx}
	return e.rebuildFrom(idx, oldLen), true
}

// tryTone applies, reverts, or finds no target for a circumflex/horn/breve
// shape modifier.
func (e *Engine) tryTone(key Key, caps bool, tone Tone, targets []Key) (Directive, bool) {
	oldLen := e.buf.Len()
	vowels := e.collectVowels()
	if len(vowels) == 0 {
		return Directive{}, false
	}

	if e.lastTransform.Kind == TransformTone && e.lastTransform.Key == key {
		minPos, cleared := -1, false
		for i := range vowels {
			if vowels[i].Tone != ToneNone {
				e.buf.At(vowels[i].Position).Tone = ToneNone
				if minPos == -1 || vowels[i].Position < minPos {
					minPos = vowels[i].Position
				}
				cleared = true
			}
		}
		if cleared {
			e.buf.Push(NewChar(key, caps))
			e.lastTransform = LastTransform{}
			return e.rebuildFrom(minPos, oldLen), true
		}
	}

	// uo is a compound vowel: a horn modifier reshapes both members at once
	// (uo -> ươ), not just one.
	if tone == ToneHornBreve && len(targets) > 1 {
		if positions, ok := e.findUoCompound(vowels); ok {
			saved := make([]Char, len(positions))
			for i, p := range positions {
				saved[i] = *e.buf.At(p)
				e.buf.At(p).Tone = tone
			}
			if !IsValid(e.buf.Keys()) {
				for i, p := range positions {
					*e.buf.At(p) = saved[i]
				}
				return Directive{}, false
			}
			e.lastTransform = LastTransform{Kind: TransformTone, Position: positions[0], Key: key}
			from := positions[0]
			if moved, movedFrom := e.repositionMarkIfNeeded(); moved && movedFrom < from {
				from = movedFrom
			}
			return e.rebuildFrom(from, oldLen), true
		}
	}

	targetPos := -1
	if tone == ToneHornBreve && len(targets) > 1 {
		targetPos = e.findHornTarget(vowels, targets)
	} else {
		for i := len(vowels) - 1; i >= 0; i-- {
			if vowels[i].Tone == ToneNone && keyInList(vowels[i].Key, targets) {
				targetPos = vowels[i].Position
				break
			}
		}
	}
	if targetPos == -1 {
		return Directive{}, false
	}

	old := *e.buf.At(targetPos)
	e.buf.At(targetPos).Tone = tone
	if !IsValid(e.buf.Keys()) {
		*e.buf.At(targetPos) = old
		return Directive{}, false
	}

	e.lastTransform = LastTransform{Kind: TransformTone, Position: targetPos, Key: key}
	from := targetPos
	if moved, movedFrom := e.repositionMarkIfNeeded(); moved && movedFrom < from {
		from = movedFrom
	}
	return e.rebuildFrom(from, oldLen), true
}

// findUoCompound reports the adjacent u+o (in either order) pair closest to
// the end of the vowel cluster that hasn't already been shape-modified, if
// any.
func (e *Engine) findUoCompound(vowels []Vowel) ([]int, bool) {
	for i := len(vowels) - 2; i >= 0; i-- {
		a, b := vowels[i], vowels[i+1]
		if a.Tone != ToneNone || b.Tone != ToneNone {
			continue
		}
		if (a.Key == KeyU && b.Key == KeyO) || (a.Key == KeyO && b.Key == KeyU) {
			return []int{a.Position, b.Position}, true
		}
	}
	return nil, false
}

// findHornTarget resolves which vowel receives the horn/breve modifier when
// more than one candidate exists (spec §4.6.2). Only Telex's 'w' trigger
// supplies 'a' as a candidate alongside o/u, so the oa/ua special pairing
// below only ever fires for Telex.
func (e *Engine) findHornTarget(vowels []Vowel, targets []Key) int {
	if keyInList(KeyA, targets) && len(vowels) >= 2 {
		prev, last := vowels[len(vowels)-2], vowels[len(vowels)-1]
		if prev.Key == KeyO && last.Key == KeyA {
			return last.Position
		}
		if prev.Key == KeyU && last.Key == KeyA {
			if e.hasQuInitial() {
				return last.Position
			}
			return prev.Position
		}
	}

	for i := len(vowels) - 1; i >= 0; i-- {
		v := vowels[i]
		if v.Tone == ToneNone && (v.Key == KeyO || v.Key == KeyU) && keyInList(v.Key, targets) {
			return v.Position
		}
	}
	for i := len(vowels) - 1; i >= 0; i-- {
		v := vowels[i]
		if v.Tone == ToneNone && keyInList(v.Key, targets) {
			return v.Position
		}
	}
	return -1
}

// repositionMarkIfNeeded recomputes the canonical mark position after a tone
// change and moves the mark there if it has shifted (spec §4.6.3).
func (e *Engine) repositionMarkIfNeeded() (moved bool, from int) {
	oldPos := -1
	for i := 0; i < e.buf.Len(); i++ {
		if c := e.buf.At(i); IsVowel(c.Key) && c.Mark != MarkNone {
			oldPos = i
			break
		}
	}
	if oldPos == -1 {
		return false, 0
	}

	vowels := e.collectVowels()
	hasFinal := e.hasFinalConsonant(vowels[len(vowels)-1].Position)
	newPos := FindTonePosition(vowels, hasFinal, e.cfg.modern(), e.hasQuInitial())
	if newPos == oldPos {
		return false, 0
	}

	mark := e.buf.At(oldPos).Mark
	e.buf.At(oldPos).Mark = MarkNone
	e.buf.At(newPos).Mark = mark

	from = oldPos
	if newPos < from {
		from = newPos
	}
	return true, from
}

// tryMark applies, reverts, or finds no valid placement for a tone mark.
func (e *Engine) tryMark(key Key, caps bool, mark Mark) (Directive, bool) {
	oldLen := e.buf.Len()
	vowels := e.collectVowels()
	if len(vowels) == 0 {
		return Directive{}, false
	}

	if e.lastTransform.Kind == TransformMark && e.lastTransform.Key == key {
		for i := e.buf.Len() - 1; i >= 0; i-- {
			c := e.buf.At(i)
			if IsVowel(c.Key) && c.Mark != MarkNone {
				c.Mark = MarkNone
				e.buf.Push(NewChar(key, caps))
				e.lastTransform = LastTransform{}
				return e.rebuildFrom(i, oldLen), true
			}
		}
	}

	hasFinal := e.hasFinalConsonant(vowels[len(vowels)-1].Position)
	pos := FindTonePosition(vowels, hasFinal, e.cfg.modern(), e.hasQuInitial())

	old := *e.buf.At(pos)
	e.buf.At(pos).Mark = mark
	if !IsValid(e.buf.Keys()) {
		*e.buf.At(pos) = old
		return Directive{}, false
	}

	e.lastTransform = LastTransform{Kind: TransformMark, Position: pos, Key: key}
	return e.rebuildFrom(pos, oldLen), true
}

// tryRemove clears the rightmost mark, or failing that the rightmost tone,
// on the vowel cluster (spec §4.6: "remove" strips one modifier layer).
func (e *Engine) tryRemove(key Key) (Directive, bool) {
	oldLen := e.buf.Len()

	for i := e.buf.Len() - 1; i >= 0; i-- {
		c := e.buf.At(i)
		if IsVowel(c.Key) && c.Mark != MarkNone {
			c.Mark = MarkNone
			e.lastTransform = LastTransform{}
			return e.rebuildFrom(i, oldLen), true
		}
	}
	for i := e.buf.Len() - 1; i >= 0; i-- {
		c := e.buf.At(i)
		if IsVowel(c.Key) && c.Tone != ToneNone {
			c.Tone = ToneNone
			e.lastTransform = LastTransform{}
			return e.rebuildFrom(i, oldLen), true
		}
	}
	return Directive{}, false
}

// tryWAsVowel handles Telex's standalone-w special case: a lone 'w' at the
// start of a syllable speculatively becomes ư (spec §4.7).
func (e *Engine) tryWAsVowel(key Key, caps bool) (Directive, bool) {
	oldLen := e.buf.Len()

	if e.lastTransform.Kind == TransformWShortcutSkipped {
		e.lastTransform = LastTransform{}
		return Directive{}, false
	}

	if e.lastTransform.Kind == TransformWAsVowel {
		pos := e.lastTransform.Position
		c := e.buf.At(pos)
		c.Key = KeyW
		c.Tone = ToneNone
		e.lastTransform = LastTransform{}
		return e.rebuildFrom(pos, oldLen), true
	}

	if e.buf.Len() != 0 {
		return Directive{}, false
	}

	e.buf.Push(Char{Key: KeyU, Caps: caps, Tone: ToneHornBreve})
	if !IsValid(e.buf.Keys()) {
		e.buf.Pop()
		e.lastTransform = LastTransform{Kind: TransformWShortcutSkipped}
		return Directive{}, false
	}

	e.lastTransform = LastTransform{Kind: TransformWAsVowel, Position: oldLen}
	return e.rebuildFrom(oldLen, oldLen), true
}

// handleLiteral appends key as a plain, unmodified character and resets the
// revert state — a fresh letter is never an undo of the previous modifier.
func (e *Engine) handleLiteral(key Key, caps bool) Directive {
	e.lastTransform = LastTransform{}

	if !IsLetter(key) && !IsNumber(key) {
		e.Clear()
		return noneDirective()
	}

	oldLen := e.buf.Len()
	e.buf.Push(NewChar(key, caps))

	word := e.buf.ToPreserveCaseString()
	if entry, ok := e.shortcuts.TryMatchImmediate(word); ok {
		backspace := e.buf.Len()
		e.Clear()
		return sendDirective(backspace, []rune(entry.Output))
	}

	return e.rebuildFrom(oldLen, oldLen)
}

// tryWordBoundaryShortcut matches the buffered word against a word-boundary
// shortcut. appendSpace is true for the Space key (which adds a trailing
// space after the expansion) and false for Enter (which doesn't).
func (e *Engine) tryWordBoundaryShortcut(appendSpace bool) Directive {
	word := e.buf.ToPreserveCaseString()
	if word == "" {
		return noneDirective()
	}

	entry, ok := e.shortcuts.TryMatchWordBoundary(word)
	if !ok {
		return noneDirective()
	}

	backspace := e.buf.Len()
	output := entry.Output
	if appendSpace {
		output += " "
	}
	return sendDirective(backspace, []rune(output))
}
