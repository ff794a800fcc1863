package errors

import stderrors "errors"

// Kind identifies what exactly went wrong. Errors of the same kind are considered equal
// by errors.Is, regardless of their messages.
type Kind uint8

const (
	InvalidRequestLine Kind = iota + 1
	InvalidStatusLine
	InvalidHeader
	InvalidHeaderContinuation
	MalformedLineEnding
	UnterminatedHeaders
	HeadTooLarge

	InvalidArgument

	InvalidPointerPosition
	NotSeekable
	NotWritable
	Detached

	MissingKey
	InvalidField
)

// Class groups kinds by the layer they originate from.
type Class uint8

const (
	Grammar Class = iota + 1
	Precondition
	StreamBoundary
	FieldMapping
)

func (k Kind) Class() Class {
	switch k {
	case InvalidRequestLine, InvalidStatusLine, InvalidHeader, InvalidHeaderContinuation,
		MalformedLineEnding, UnterminatedHeaders, HeadTooLarge:
		return Grammar
	case InvalidArgument:
		return Precondition
	case InvalidPointerPosition, NotSeekable, NotWritable, Detached:
		return StreamBoundary
	case MissingKey, InvalidField:
		return FieldMapping
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case InvalidRequestLine:
		return "InvalidRequestLine"
	case InvalidStatusLine:
		return "InvalidStatusLine"
	case InvalidHeader:
		return "InvalidHeader"
	case InvalidHeaderContinuation:
		return "InvalidHeaderContinuation"
	case MalformedLineEnding:
		return "MalformedLineEnding"
	case UnterminatedHeaders:
		return "UnterminatedHeaders"
	case HeadTooLarge:
		return "HeadTooLarge"
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidPointerPosition:
		return "InvalidPointerPosition"
	case NotSeekable:
		return "NotSeekable"
	case NotWritable:
		return "NotWritable"
	case Detached:
		return "Detached"
	case MissingKey:
		return "MissingKey"
	case InvalidField:
		return "InvalidField"
	default:
		return "Unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func New(kind Kind, message string) error {
	return Error{
		Kind:    kind,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// Is reports whether the target is an Error of the same kind.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == e.Kind
}

// KindOf unwraps err looking for an Error and returns its kind. Zero is returned
// if there's none.
func KindOf(err error) Kind {
	var e Error
	if stderrors.As(err, &e) {
		return e.Kind
	}

	return 0
}

var (
	ErrInvalidRequestLine        = New(InvalidRequestLine, "invalid request line detected")
	ErrInvalidStatusLine         = New(InvalidStatusLine, "no status line detected")
	ErrInvalidHeader             = New(InvalidHeader, "invalid header detected")
	ErrInvalidHeaderContinuation = New(InvalidHeaderContinuation, "invalid header continuation")
	ErrMalformedLineEnding       = New(MalformedLineEnding, "malformed line ending")
	ErrUnexpectedCR              = New(MalformedLineEnding, "unexpected carriage return detected")
	ErrUnexpectedLF              = New(MalformedLineEnding, "unexpected line feed detected")
	ErrUnterminatedHeaders       = New(UnterminatedHeaders, "unexpected end of headers")
	ErrHeadTooLarge              = New(HeadTooLarge, "message head is too large")

	ErrInvalidArgument = New(InvalidArgument, "message stream must be both readable and seekable")

	ErrInvalidPointerPosition = New(InvalidPointerPosition, "invalid pointer position")
	ErrNotSeekable            = New(NotSeekable, "stream is not seekable")
	ErrNotWritable            = New(NotWritable, "stream is not writable")
	ErrDetached               = New(Detached, "stream is detached")

	ErrMissingKey   = New(MissingKey, "missing key in serialized message")
	ErrInvalidField = New(InvalidField, "invalid field in serialized message")
)
