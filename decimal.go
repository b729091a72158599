package numbers

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/db47h/decimal"
)

type decForm uint8

const (
	formFinite decForm = iota
	formInf
	formNaN
)

// dec is the engine's canonical decimal: value = 0.digits × 10^exp, with
// digits holding ASCII significant digits, no leading or trailing zeros.
// A zero value has empty digits and exp 0.
type dec struct {
	neg    bool
	form   decForm
	digits []byte
	exp    int
}

func (d *dec) isZero() bool {
	return d.form == formFinite && len(d.digits) == 0
}

func (d *dec) normalize() {
	start := 0
	for start < len(d.digits) && d.digits[start] == '0' {
		start++
		d.exp--
	}
	end := len(d.digits)
	for end > start && d.digits[end-1] == '0' {
		end--
	}
	d.digits = d.digits[start:end]
	if len(d.digits) == 0 {
		d.exp = 0
	}
}

// decFromValue converts any accepted input type into canonical form.
func decFromValue(value any) (dec, error) {
	switch v := value.(type) {
	case int:
		return decFromInt64(int64(v)), nil
	case int8:
		return decFromInt64(int64(v)), nil
	case int16:
		return decFromInt64(int64(v)), nil
	case int32:
		return decFromInt64(int64(v)), nil
	case int64:
		return decFromInt64(v), nil
	case uint:
		return decFromUint64(uint64(v), false), nil
	case uint8:
		return decFromUint64(uint64(v), false), nil
	case uint16:
		return decFromUint64(uint64(v), false), nil
	case uint32:
		return decFromUint64(uint64(v), false), nil
	case uint64:
		return decFromUint64(v, false), nil
	case float32:
		return decFromFloat(float64(v))
	case float64:
		return decFromFloat(v)
	case string:
		return parseDec(v)
	case *big.Int:
		if v == nil {
			return dec{}, fmt.Errorf("%w: nil *big.Int", ErrInvalidNumber)
		}
		return parseDec(v.String())
	case *big.Float:
		if v == nil {
			return dec{}, fmt.Errorf("%w: nil *big.Float", ErrInvalidNumber)
		}
		if v.IsInf() {
			return dec{neg: v.Signbit(), form: formInf}, nil
		}
		return parseDec(v.Text('e', -1))
	case *decimal.Decimal:
		if v == nil {
			return dec{}, fmt.Errorf("%w: nil *decimal.Decimal", ErrInvalidNumber)
		}
		if v.IsInf() {
			return dec{neg: v.Signbit(), form: formInf}, nil
		}
		return parseDec(v.Text('e', -1))
	default:
		return dec{}, fmt.Errorf("%w: unsupported value type %T", ErrInvalidNumber, value)
	}
}

func decFromInt64(v int64) dec {
	if v < 0 {
		// Negate via uint64 so math.MinInt64 survives.
		return decFromUint64(uint64(-(v + 1))+1, true)
	}
	return decFromUint64(uint64(v), false)
}

func decFromUint64(v uint64, neg bool) dec {
	if v == 0 {
		return dec{}
	}
	digits := strconv.AppendUint(nil, v, 10)
	d := dec{neg: neg, digits: digits, exp: len(digits)}
	d.normalize()
	return d
}

func decFromFloat(f float64) (dec, error) {
	switch {
	case math.IsNaN(f):
		return dec{form: formNaN}, nil
	case math.IsInf(f, 0):
		return dec{neg: f < 0, form: formInf}, nil
	}
	// Shortest round-trip decomposition.
	return parseDec(strconv.FormatFloat(f, 'e', -1, 64))
}

// parseDec reads a plain or exponent-form decimal literal.
func parseDec(s string) (dec, error) {
	var d dec
	src := strings.TrimSpace(s)
	if src == "" {
		return d, fmt.Errorf("%w: empty numeric literal", ErrInvalidNumber)
	}

	i := 0
	if src[i] == '+' || src[i] == '-' {
		d.neg = src[i] == '-'
		i++
	}

	var digits []byte
	pointAt := -1
	seenDigit := false
	for i < len(src) {
		c := src[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
			seenDigit = true
		case c == '.' && pointAt < 0:
			pointAt = len(digits)
		case c == 'e' || c == 'E':
			goto exponent
		default:
			return dec{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		i++
	}

exponent:
	expAdjust := 0
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		v, err := strconv.Atoi(src[i+1:])
		if err != nil {
			return dec{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		expAdjust = v
		i = len(src)
	}
	if !seenDigit {
		return dec{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	if pointAt < 0 {
		pointAt = len(digits)
	}
	d.digits = digits
	d.exp = pointAt + expAdjust
	d.normalize()
	return d, nil
}

// shift multiplies by 10^k.
func (d *dec) shift(k int) {
	if !d.isZero() {
		d.exp += k
	}
}

// roundUp reports whether the dropped tail pushes the kept digits up by one
// unit, per mode. first is the leading dropped digit, tie whether the tail
// is exactly half a unit, and lastKept the digit preceding the cut ('0' when
// nothing is kept).
func roundUp(mode RoundingMode, neg bool, first byte, tie bool, lastKept byte) bool {
	switch mode {
	case RoundDown:
		return false
	case RoundUp:
		return true
	case RoundCeiling:
		return !neg
	case RoundFloor:
		return neg
	case RoundHalfUp:
		return first > '5' || (first == '5' && !tie) || tie
	case RoundHalfDown:
		return first > '5' || (first == '5' && !tie)
	default: // RoundHalfEven
		if first > '5' || (first == '5' && !tie) {
			return true
		}
		return tie && (lastKept-'0')%2 == 1
	}
}

// round keeps the leading keep digits, resolving the rest per mode.
func (d *dec) round(keep int, mode RoundingMode) {
	if d.form != formFinite || d.isZero() || keep >= len(d.digits) {
		return
	}

	if keep < 0 {
		// The whole value sits below the rounding position: it is
		// strictly under half a unit, so only directed away-modes
		// produce one unit.
		if roundUpDirected(mode, d.neg) {
			d.digits = []byte{'1'}
			d.exp = d.exp - keep + 1
		} else {
			d.digits = nil
			d.exp = 0
		}
		return
	}

	first := d.digits[keep]
	tie := first == '5' && keep+1 == len(d.digits)
	lastKept := byte('0')
	if keep > 0 {
		lastKept = d.digits[keep-1]
	}

	kept := append([]byte(nil), d.digits[:keep]...)
	if roundUp(mode, d.neg, first, tie, lastKept) {
		i := len(kept) - 1
		for ; i >= 0; i-- {
			if kept[i] != '9' {
				kept[i]++
				break
			}
			kept[i] = '0'
		}
		if i < 0 {
			// Carry past the most significant digit: 999 → 1000.
			kept = append([]byte{'1'}, kept...)
			d.exp++
		}
	}
	d.digits = kept
	d.normalize()
}

func roundUpDirected(mode RoundingMode, neg bool) bool {
	switch mode {
	case RoundUp:
		return true
	case RoundCeiling:
		return !neg
	case RoundFloor:
		return neg
	}
	return false
}

// roundToScale rounds so that no digits remain beyond 10^-scale.
func (d *dec) roundToScale(scale int, mode RoundingMode) {
	if d.form != formFinite || d.isZero() {
		return
	}
	keep := d.exp + scale
	if keep < len(d.digits) {
		d.round(keep, mode)
	}
}

// roundSignificant rounds to at most sig significant digits.
func (d *dec) roundSignificant(sig int, mode RoundingMode) {
	if d.form != formFinite || d.isZero() || sig <= 0 {
		return
	}
	if sig < len(d.digits) {
		d.round(sig, mode)
	}
}

var bigTen = big.NewInt(10)

// snapToIncrement rounds to the nearest multiple of inc using exact scaled
// integer arithmetic.
func (d *dec) snapToIncrement(inc increment, mode RoundingMode) {
	if d.form != formFinite || d.isZero() || inc.isZero() {
		return
	}

	incInt, ok := new(big.Int).SetString(inc.digits, 10)
	if !ok || incInt.Sign() == 0 {
		return
	}

	coeff, _ := new(big.Int).SetString(string(d.digits), 10)
	// value = coeff × 10^point; align to the increment's scale.
	point := d.exp - len(d.digits)
	t := point + inc.scale

	numerator := new(big.Int).Set(coeff)
	tail := new(big.Int)
	tailScale := new(big.Int).SetInt64(1)
	if t >= 0 {
		numerator.Mul(numerator, new(big.Int).Exp(bigTen, big.NewInt(int64(t)), nil))
	} else {
		tailScale.Exp(bigTen, big.NewInt(int64(-t)), nil)
		numerator.QuoRem(numerator, tailScale, tail)
	}

	q, r := new(big.Int), new(big.Int)
	q.QuoRem(numerator, incInt, r)

	if r.Sign() != 0 || tail.Sign() != 0 {
		// Compare the fractional remainder against half the increment.
		lhs := new(big.Int).Mul(r, tailScale)
		lhs.Add(lhs, tail)
		lhs.Mul(lhs, big.NewInt(2))
		rhs := new(big.Int).Mul(incInt, tailScale)

		cmp := lhs.Cmp(rhs)
		up := false
		switch mode {
		case RoundDown:
		case RoundUp:
			up = true
		case RoundCeiling:
			up = !d.neg
		case RoundFloor:
			up = d.neg
		case RoundHalfUp:
			up = cmp >= 0
		case RoundHalfDown:
			up = cmp > 0
		default: // RoundHalfEven
			up = cmp > 0 || (cmp == 0 && q.Bit(0) == 1)
		}
		if up {
			q.Add(q, big.NewInt(1))
		}
	}

	q.Mul(q, incInt)
	if q.Sign() == 0 {
		d.digits = nil
		d.exp = 0
		return
	}
	str := q.String()
	d.digits = []byte(str)
	d.exp = len(str) - inc.scale
	d.normalize()
}

// digitLayout is the C2 output consumed by the assembler: plain ASCII digit
// arrays plus scientific exponent data.
type digitLayout struct {
	intDigits  []byte
	fracDigits []byte
	exponent   int
	scientific bool
	nan        bool
	infinite   bool
	negative   bool
}

// layoutConstraints carries resolved per-call digit rules into the engine.
type layoutConstraints struct {
	mode          RoundingMode
	fracOverride  *int      // caller fractional_digits
	currencyFrac  *int      // from the currency record
	roundNearest  increment // caller round_nearest or currency cash increment
	maxIntDigits  *int      // caller maximum_integer_digits
}

// computeLayout runs the decimal engine: multiplier, exponent selection,
// constraint resolution, rounding, and digit expansion.
func computeLayout(d dec, sp *subpattern, lc layoutConstraints) digitLayout {
	if d.form == formNaN {
		return digitLayout{nan: true, negative: d.neg}
	}
	if d.form == formInf {
		return digitLayout{infinite: true, negative: d.neg}
	}

	out := digitLayout{negative: d.neg}

	if sp.multiplier > 1 {
		switch sp.multiplier {
		case 100:
			d.shift(2)
		case 1000:
			d.shift(3)
		}
	}

	minFrac, maxFrac := sp.minFrac, sp.maxFrac
	minSig, maxSig := sp.minSig, sp.maxSig
	unlimitedFrac := false

	if lc.currencyFrac != nil && lc.fracOverride == nil {
		minFrac, maxFrac = *lc.currencyFrac, *lc.currencyFrac
	}
	if lc.fracOverride != nil {
		minFrac, maxFrac = *lc.fracOverride, *lc.fracOverride
		minSig, maxSig = 0, 0
	}

	if sp.scientific() {
		return computeScientific(d, sp, lc, minFrac, maxFrac, minSig, maxSig)
	}

	// Snapping precedence: caller round_nearest (or currency cash
	// increment resolved upstream), then the pattern's own increment.
	if !lc.roundNearest.isZero() {
		d.snapToIncrement(lc.roundNearest, lc.mode)
	} else if !sp.inc.isZero() {
		d.snapToIncrement(sp.inc, lc.mode)
	}

	if maxSig > 0 {
		d.roundSignificant(maxSig, lc.mode)
		// Pad the fraction until minSig significant digits are visible:
		// everything past the first minSig positions from the leading
		// digit, which sits at 10^(exp-1).
		minFrac = minSig - d.exp
		if minFrac < 0 {
			minFrac = 0
		}
		unlimitedFrac = true
	} else {
		d.roundToScale(maxFrac, lc.mode)
	}

	minInt := sp.minInt
	if minInt < 1 && d.exp <= 0 {
		// Values below one still show the zero integer digit.
		minInt = 1
	}
	out.intDigits = expandInt(d, minInt)
	if lc.maxIntDigits != nil && *lc.maxIntDigits >= 0 && len(out.intDigits) > *lc.maxIntDigits {
		out.intDigits = trimLeft(out.intDigits, *lc.maxIntDigits, sp.minInt)
	}
	out.fracDigits = expandFrac(d, minFrac, maxFrac, unlimitedFrac)
	return out
}

func computeScientific(d dec, sp *subpattern, lc layoutConstraints, minFrac, maxFrac, minSig, maxSig int) digitLayout {
	out := digitLayout{negative: d.neg, scientific: true}

	// An all-optional pattern like "#E0" keeps the full significand.
	unlimited := maxSig > 0 ||
		(maxFrac == 0 && sp.minInt == 0 && lc.fracOverride == nil)

	shown := scientificIntDigits(sp, d.exp, d.isZero())
	displayExp := 0
	if !d.isZero() {
		displayExp = d.exp - shown
		d.exp = shown
	}

	switch {
	case maxSig > 0:
		d.roundSignificant(maxSig, lc.mode)
	case unlimited:
	default:
		d.roundToScale(maxFrac, lc.mode)
	}

	// Rounding may have carried past the allowed integer digits
	// (9.99E2 → 10.0E2); renormalize the exponent once.
	if !d.isZero() && d.exp > shown {
		trueExp := displayExp + d.exp
		shown = scientificIntDigits(sp, trueExp, false)
		displayExp = trueExp - shown
		d.exp = shown
	}

	minInt := shown
	if minSig > 0 && minInt < 1 {
		minInt = 1
	}
	out.intDigits = expandInt(d, minInt)
	out.fracDigits = expandFrac(d, minFrac, maxFrac, unlimited)
	out.exponent = displayExp
	return out
}

// scientificIntDigits picks how many integer digits the significand shows:
// the engineering interval when the pattern requests one, the required
// minimum otherwise.
func scientificIntDigits(sp *subpattern, exp int, zero bool) int {
	interval := sp.maxIntDigits()
	if !zero && interval > 1 && interval > sp.minInt {
		m := (exp - 1) % interval
		if m < 0 {
			m += interval
		}
		return m + 1
	}
	if sp.minInt > 0 {
		return sp.minInt
	}
	return 1
}

func expandInt(d dec, minInt int) []byte {
	count := d.exp
	if count < 0 {
		count = 0
	}
	if count < minInt {
		count = minInt
	}
	out := make([]byte, 0, count)
	lead := count - d.exp
	for i := 0; i < count; i++ {
		idx := i - lead
		if idx >= 0 && idx < len(d.digits) {
			out = append(out, d.digits[idx])
		} else {
			out = append(out, '0')
		}
	}
	return out
}

func expandFrac(d dec, minFrac, maxFrac int, unlimited bool) []byte {
	var out []byte
	// Leading zeros between the radix point and the first digit.
	for i := d.exp; i < 0; i++ {
		out = append(out, '0')
	}
	start := d.exp
	if start < 0 {
		start = 0
	}
	for i := start; i < len(d.digits); i++ {
		out = append(out, d.digits[i])
	}
	if !unlimited && len(out) > maxFrac {
		out = out[:maxFrac]
	}
	for len(out) < minFrac {
		out = append(out, '0')
	}
	return out
}

// trimLeft drops leading digits past the cap, then strips surplus zeros down
// to the pattern minimum.
func trimLeft(digits []byte, maxInt, minInt int) []byte {
	out := digits[len(digits)-maxInt:]
	keep := minInt
	if keep < 1 {
		keep = 1
	}
	for len(out) > keep && out[0] == '0' {
		out = out[1:]
	}
	return out
}
