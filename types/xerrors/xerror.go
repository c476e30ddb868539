package xerrors

import (
	"errors"
	"fmt"
)

const (
	ErrCodeSuccess uint32 = iota
	ErrCodeOrdinary
	ErrCodeDomain
	ErrCodeOverflow
	ErrCodeInvalidPool
	ErrCodeInvalidInput
	ErrCodeNotFoundMethod
)

var (
	ErrDomain   = New(ErrCodeDomain, "domain violation")
	ErrOverFlow = New(ErrCodeOverflow, "overflow")

	ErrInvalidPool    = New(ErrCodeInvalidPool, "invalid pool")
	ErrInvalidInput   = New(ErrCodeInvalidInput, "invalid input")
	ErrNotFoundMethod = New(ErrCodeNotFoundMethod, "not found method")

	// logarithm, exponential and power
	ErrNonPositiveLn          = ErrDomain.Wrap(NewOrdinary("logarithm of non-positive value"))
	ErrLn36OutOfBand          = ErrDomain.Wrap(NewOrdinary("extended logarithm argument out of band"))
	ErrExpOutOfBounds         = ErrOverFlow.Wrap(NewOrdinary("exponent out of bounds"))
	ErrPowBaseOutOfBounds     = ErrDomain.Wrap(NewOrdinary("power base out of bounds"))
	ErrPowExponentOutOfBounds = ErrDomain.Wrap(NewOrdinary("power exponent out of bounds"))
	ErrPowProductOutOfBounds  = ErrOverFlow.Wrap(NewOrdinary("power product out of bounds"))

	// invariant solver
	ErrLengthMismatch = ErrInvalidPool.Wrap(NewOrdinary("weights and balances length mismatch"))
	ErrEmptyPool      = ErrInvalidPool.Wrap(NewOrdinary("no assets"))
	ErrTooManyAssets  = ErrInvalidPool.Wrap(NewOrdinary("too many assets"))
	ErrInvalidWeight  = ErrInvalidPool.Wrap(NewOrdinary("weight out of range"))
	ErrWeightSum      = ErrInvalidPool.Wrap(NewOrdinary("weights do not sum to one unit"))
	ErrZeroBalance    = ErrInvalidPool.Wrap(NewOrdinary("zero balance"))
	ErrInvalidBudget  = ErrInvalidPool.Wrap(NewOrdinary("convergence budget must be positive"))
	ErrDegenerateStep = ErrInvalidPool.Wrap(NewOrdinary("non-positive newton denominator"))
)

type XError interface {
	Code() uint32
	Cause() error
	Error() string
	Msg() string
	Wrap(error) XError
	Wrapf(string, ...any) XError
	Contains(XError) bool
	Equal(XError) bool
}

type xerror struct {
	code  uint32
	msg   string
	cause error
}

func New(code uint32, msg string) XError {
	return &xerror{
		code: code,
		msg:  msg,
	}
}

func NewOrdinary(msg string) XError {
	return &xerror{
		code: ErrCodeOrdinary,
		msg:  msg,
	}
}

func From(err error) XError {
	if err == nil {
		return nil
	}
	if xerr, ok := err.(XError); ok {
		return xerr
	}
	return NewOrdinary(err.Error())
}

func Wrap(err error, msg string) XError {
	return &xerror{
		code:  ErrCodeOrdinary,
		msg:   msg,
		cause: err,
	}
}

func (xerr *xerror) Code() uint32 {
	return xerr.code
}

func (xerr *xerror) Error() string {
	msg := xerr.msg

	if xerr.cause != nil {
		msg += "\n\t" + xerr.cause.Error()
	}

	return msg
}

func (xerr *xerror) Msg() string {
	return xerr.msg
}

func (xerr *xerror) Cause() error {
	return xerr.cause
}

// Unwrap lets errors.Is and errors.As walk the cause chain.
func (xerr *xerror) Unwrap() error {
	return xerr.cause
}

// Is reports whether xerr starts with the same chain of codes and messages as target,
// so that an error wrapped with extra detail still matches its predeclared value.
func (xerr *xerror) Is(target error) bool {
	t, ok := target.(*xerror)
	if !ok {
		return false
	}
	if xerr.code != t.code || xerr.msg != t.msg {
		return false
	}
	if t.cause == nil {
		return true
	}
	if c, ok := xerr.cause.(*xerror); ok {
		return c.Is(t.cause)
	}
	return errors.Is(xerr.cause, t.cause)
}

func (xerr *xerror) Wrap(err error) XError {
	if xerr.cause != nil {
		if cerr, ok := xerr.cause.(*xerror); ok {
			return &xerror{
				code:  xerr.code,
				msg:   xerr.msg,
				cause: cerr.Wrap(err),
			}
		}
	}
	return &xerror{
		code:  xerr.code,
		msg:   xerr.msg,
		cause: err,
	}
}

func (xerr *xerror) Wrapf(format string, args ...any) XError {
	return xerr.Wrap(New(ErrCodeOrdinary, fmt.Sprintf(format, args...)))
}

func (xerr *xerror) Contains(other XError) bool {
	if xerr.code == other.Code() && xerr.msg == other.Msg() {
		return true
	} else if xerr.cause != nil {
		if _xerr, ok := xerr.cause.(*xerror); ok {
			return _xerr.Contains(other)
		} else {
			return errors.Is(xerr.cause, other)
		}
	}
	return false
}

func (xerr *xerror) Equal(other XError) bool {
	return xerr.code == other.Code()
}
