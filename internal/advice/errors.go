package advice

type constError string

func (e constError) Error() string { return string(e) }

// ErrNoSuggestions is returned when the advice catalog contains no strategies.
const ErrNoSuggestions = constError("advice catalog has no suggestions")
