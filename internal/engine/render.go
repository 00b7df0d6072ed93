package engine

// render.go is a pure lookup table, not runtime Unicode composition — output
// is always a single precomposed code point, and the set of producible
// characters is finite and testable (spec §4.1).

// toneLetterBase maps (base vowel key, Tone) to the resulting lowercase base
// letter the tone mark table is then indexed by. ToneNone leaves the vowel
// unchanged; ToneCircumflex / ToneHornBreve select the modified letter.
var toneLetterBase = map[Key]map[Tone]rune{
	KeyA: {ToneNone: 'a', ToneCircumflex: 'â', ToneHornBreve: 'ă'},
	KeyE: {ToneNone: 'e', ToneCircumflex: 'ê'},
	KeyO: {ToneNone: 'o', ToneCircumflex: 'ô', ToneHornBreve: 'ơ'},
	KeyU: {ToneNone: 'u', ToneHornBreve: 'ư'},
	KeyI: {ToneNone: 'i'},
	KeyY: {ToneNone: 'y'},
}

// markTable maps a base vowel letter (already tone-modified) to each of the
// five tone marks' precomposed form.
var markTable = map[rune]map[Mark]rune{
	'a': {MarkNone: 'a', MarkAcute: 'á', MarkGrave: 'à', MarkHook: 'ả', MarkTilde: 'ã', MarkDot: 'ạ'},
	'ă': {MarkNone: 'ă', MarkAcute: 'ắ', MarkGrave: 'ằ', MarkHook: 'ẳ', MarkTilde: 'ẵ', MarkDot: 'ặ'},
	'â': {MarkNone: 'â', MarkAcute: 'ấ', MarkGrave: 'ầ', MarkHook: 'ẩ', MarkTilde: 'ẫ', MarkDot: 'ậ'},
	'e': {MarkNone: 'e', MarkAcute: 'é', MarkGrave: 'è', MarkHook: 'ẻ', MarkTilde: 'ẽ', MarkDot: 'ẹ'},
	'ê': {MarkNone: 'ê', MarkAcute: 'ế', MarkGrave: 'ề', MarkHook: 'ể', MarkTilde: 'ễ', MarkDot: 'ệ'},
	'i': {MarkNone: 'i', MarkAcute: 'í', MarkGrave: 'ì', MarkHook: 'ỉ', MarkTilde: 'ĩ', MarkDot: 'ị'},
	'o': {MarkNone: 'o', MarkAcute: 'ó', MarkGrave: 'ò', MarkHook: 'ỏ', MarkTilde: 'õ', MarkDot: 'ọ'},
	'ô': {MarkNone: 'ô', MarkAcute: 'ố', MarkGrave: 'ồ', MarkHook: 'ổ', MarkTilde: 'ỗ', MarkDot: 'ộ'},
	'ơ': {MarkNone: 'ơ', MarkAcute: 'ớ', MarkGrave: 'ờ', MarkHook: 'ở', MarkTilde: 'ỡ', MarkDot: 'ợ'},
	'u': {MarkNone: 'u', MarkAcute: 'ú', MarkGrave: 'ù', MarkHook: 'ủ', MarkTilde: 'ũ', MarkDot: 'ụ'},
	'ư': {MarkNone: 'ư', MarkAcute: 'ứ', MarkGrave: 'ừ', MarkHook: 'ử', MarkTilde: 'ữ', MarkDot: 'ự'},
	'y': {MarkNone: 'y', MarkAcute: 'ý', MarkGrave: 'ỳ', MarkHook: 'ỷ', MarkTilde: 'ỹ', MarkDot: 'ỵ'},
}

// Render is the pure total function (key, caps, tone, mark) -> rune. It
// returns ok=false if the combination names no Vietnamese letter (e.g. a
// consonant with a mark, or a tone modifier on a consonant).
func Render(key Key, caps bool, tone Tone, mark Mark) (rune, bool) {
	if mark != MarkNone && !IsVowel(key) {
		return 0, false
	}

	if key == KeyD && tone == ToneNone {
		if caps {
			return 'D', true
		}
		return 'd', true
	}

	base, ok := toneLetterBase[key]
	if !ok {
		return 0, false
	}
	letter, ok := base[tone]
	if !ok {
		// Requested tone shape doesn't exist for this vowel (e.g. breve on e).
		return 0, false
	}

	result := letter
	if mark != MarkNone {
		marks, ok := markTable[letter]
		if !ok {
			return 0, false
		}
		m, ok := marks[mark]
		if !ok {
			return 0, false
		}
		result = m
	}

	if caps {
		return upperVietnamese(result), true
	}
	return result, true
}

func renderD(caps bool) rune {
	if caps {
		return 'Đ'
	}
	return 'đ'
}

// upperVietnamese uppercases a precomposed Vietnamese lowercase letter. Go's
// unicode.ToUpper already knows every code point used here, but the
// renderer keeps its own explicit table so the producible character set
// stays a closed, testable lookup rather than relying on the general
// Unicode case-folding tables.
var upperTable = map[rune]rune{
	'a': 'A', 'á': 'Á', 'à': 'À', 'ả': 'Ả', 'ã': 'Ã', 'ạ': 'Ạ',
	'ă': 'Ă', 'ắ': 'Ắ', 'ằ': 'Ằ', 'ẳ': 'Ẳ', 'ẵ': 'Ẵ', 'ặ': 'Ặ',
	'â': 'Â', 'ấ': 'Ấ', 'ầ': 'Ầ', 'ẩ': 'Ẩ', 'ẫ': 'Ẫ', 'ậ': 'Ậ',
	'e': 'E', 'é': 'É', 'è': 'È', 'ẻ': 'Ẻ', 'ẽ': 'Ẽ', 'ẹ': 'Ẹ',
	'ê': 'Ê', 'ế': 'Ế', 'ề': 'Ề', 'ể': 'Ể', 'ễ': 'Ễ', 'ệ': 'Ệ',
	'i': 'I', 'í': 'Í', 'ì': 'Ì', 'ỉ': 'Ỉ', 'ĩ': 'Ĩ', 'ị': 'Ị',
	'o': 'O', 'ó': 'Ó', 'ò': 'Ò', 'ỏ': 'Ỏ', 'õ': 'Õ', 'ọ': 'Ọ',
	'ô': 'Ô', 'ố': 'Ố', 'ồ': 'Ồ', 'ổ': 'Ổ', 'ỗ': 'Ỗ', 'ộ': 'Ộ',
	'ơ': 'Ơ', 'ớ': 'Ớ', 'ờ': 'Ờ', 'ở': 'Ở', 'ỡ': 'Ỡ', 'ợ': 'Ợ',
	'u': 'U', 'ú': 'Ú', 'ù': 'Ù', 'ủ': 'Ủ', 'ũ': 'Ũ', 'ụ': 'Ụ',
	'ư': 'Ư', 'ứ': 'Ứ', 'ừ': 'Ừ', 'ử': 'Ử', 'ữ': 'Ữ', 'ự': 'Ự',
	'y': 'Y', 'ý': 'Ý', 'ỳ': 'Ỳ', 'ỷ': 'Ỷ', 'ỹ': 'Ỹ', 'ỵ': 'Ỵ',
}

func upperVietnamese(r rune) rune {
	if u, ok := upperTable[r]; ok {
		return u
	}
	return r
}

// RenderChar renders a buffered Char, falling back to the plain ASCII letter
// (or digit) if the combination has no Vietnamese form (spec §7: "rendering
// miss... fall back to the undecorated letter").
func RenderChar(c Char) rune {
	if c.Key == KeyD && c.Stroke {
		return renderD(c.Caps)
	}
	if r, ok := Render(c.Key, c.Caps, c.Tone, c.Mark); ok {
		return r
	}
	if r := letterRune(c.Key); r != 0 {
		if c.Caps {
			return upperVietnamese2Ascii(r)
		}
		return r
	}
	if d := digitValue(c.Key); d >= 0 {
		return rune('0' + d)
	}
	return 0
}

func upperVietnamese2Ascii(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
