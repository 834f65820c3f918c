package common

// ConstError is a error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// ErrIndexOutOfRange is returned when a key cannot be converted
// to a valid array index.
const ErrIndexOutOfRange = ConstError("index key out of range")
