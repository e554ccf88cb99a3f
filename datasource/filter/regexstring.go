package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	rjagro "github.com/Swyamk/rjagro-sub000"
)

// RegexString is a PlainString which understands ".*" wildcards in
// EQUALS and NOT_EQUALS filters. Everything else is matched literally, and
// the whole record value must match.
type RegexString struct {
	*Common
}

func (filter RegexString) ParseValue(value interface{}) (*regexp.Regexp, error) {
	stringVal, canCast := value.(string)
	if !canCast {
		return nil, fmt.Errorf("cannot read %v as string", value)
	}

	parts := strings.Split(stringVal, ".*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}

	return regexp.Compile("(?is)^" + strings.Join(parts, ".*") + "$")
}

func (filter RegexString) Operator(value interface{}, filterMode rjagro.FilterMode) (Operator, error) {
	stringVal, canCast := value.(string)
	if !canCast {
		return "", errors.New("cannot cast to string")
	}

	if strings.Contains(stringVal, ".*") {
		switch filterMode {
		case rjagro.FilterEquals:
			return OperatorLike, nil
		case rjagro.FilterNotEquals:
			return OperatorNotLike, nil
		default:
			return filter.Common.Operator(value, filterMode)
		}
	} else {
		return filter.Common.Operator(value, filterMode)
	}
}

func (filter RegexString) Matches(recordValue, value interface{}, filterMode rjagro.FilterMode) (bool, error) {
	op, err := filter.Operator(value, filterMode)
	if err != nil {
		return false, err
	}

	if op != OperatorLike && op != OperatorNotLike {
		return PlainString{Common: filter.Common}.Matches(recordValue, value, filterMode)
	}

	pattern, err := filter.ParseValue(value)
	if err != nil {
		return false, err
	}

	if recordValue == nil {
		return filter.absentMatches(op), nil
	}

	return pattern.MatchString(fmt.Sprint(recordValue)) == (op == OperatorLike), nil
}
