package crt

// InvalidEntry - Custom error to inform that an entry was given a nil key or a nil value
type InvalidEntry struct {
	msg string
}

// Error - Used to notify that a key or value is missing
func (E InvalidEntry) Error() string {
	if E.msg == "" {
		return "key or value can not be nil"
	}
	return E.msg
}

// Is - Matches any InvalidEntry regardless of message
func (E InvalidEntry) Is(target error) bool {
	_, ok := target.(InvalidEntry)
	return ok
}

// EmptyStructure - Custom error to inform that an operation needs at least one element but the structure is empty
type EmptyStructure struct {
	msg string
}

// Error - Used to notify that the structure is empty
func (E EmptyStructure) Error() string {
	if E.msg == "" {
		return "structure is empty"
	}
	return E.msg
}

// Is - Matches any EmptyStructure regardless of message
func (E EmptyStructure) Is(target error) bool {
	_, ok := target.(EmptyStructure)
	return ok
}

// TableFull - Custom error to inform that the hash table is full and can't take more records
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (T TableFull) Error() string {
	if T.msg == "" {
		return "table full"
	}
	return T.msg
}

// Is - Matches any TableFull regardless of message
func (T TableFull) Is(target error) bool {
	_, ok := target.(TableFull)
	return ok
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm never reached a valid bucket
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// Is - Matches any ProbingAlgorithm regardless of message
func (P ProbingAlgorithm) Is(target error) bool {
	_, ok := target.(ProbingAlgorithm)
	return ok
}

// UnknownTechnique - Custom error to inform that a collision resolution technique is not supported
type UnknownTechnique struct {
	msg string
}

// Error - Used to notify that the technique is unknown
func (U UnknownTechnique) Error() string {
	if U.msg == "" {
		return "unknown collision resolution technique"
	}
	return U.msg
}

// Is - Matches any UnknownTechnique regardless of message
func (U UnknownTechnique) Is(target error) bool {
	_, ok := target.(UnknownTechnique)
	return ok
}
