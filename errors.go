package numbers

import "errors"

// ErrCompile indicates that a CLDR decimal format pattern failed to parse.
var ErrCompile = errors.New("numbers: invalid format pattern")

// ErrFormat indicates contradictory or incomplete formatting options, such as
// a currency pattern used without a currency.
var ErrFormat = errors.New("numbers: invalid format request")

// ErrUnknownFormat indicates a named format that is not defined for the
// locale and number system.
var ErrUnknownFormat = errors.New("numbers: unknown format")

// ErrUnknownLocale indicates a locale the backend has no data for.
var ErrUnknownLocale = errors.New("numbers: unknown locale")

// ErrUnknownNumberSystem indicates a number system the locale does not define.
var ErrUnknownNumberSystem = errors.New("numbers: unknown number system")

// ErrUnknownCurrency indicates a currency code the backend has no record for.
var ErrUnknownCurrency = errors.New("numbers: unknown currency")

// ErrInvalidOption marks an option value outside its allowed range.
var ErrInvalidOption = errors.New("numbers: invalid option")

// ErrInvalidNumber indicates a value type or literal the engine cannot
// interpret as a number.
var ErrInvalidNumber = errors.New("numbers: invalid number")
