package cli

import "fmt"

type unknownTopicError struct {
	topic string
}

func (e unknownTopicError) Error() string {
	return fmt.Sprintf("unknown docs topic: %q (run `datepicker docs` to list topics)", e.topic)
}

func errUnknownTopic(topic string) error {
	return unknownTopicError{topic: topic}
}

type unknownKeyError struct {
	key string
}

func (e unknownKeyError) Error() string {
	return fmt.Sprintf("unknown config key: %q (want one of %s)", e.key, configKeyList())
}

func errUnknownKey(key string) error {
	return unknownKeyError{key: key}
}

type badFlagError struct {
	flag  string
	value string
	err   error
}

func (e badFlagError) Error() string {
	return fmt.Sprintf("invalid --%s %q: %v", e.flag, e.value, e.err)
}

func (e badFlagError) Unwrap() error { return e.err }

func errBadFlag(flag, value string, err error) error {
	return badFlagError{flag: flag, value: value, err: err}
}
