package errors

func InvalidParamsErr(err error) error {
	return E(Invalid, "invalid params", err)
}

func InvalidBodyErr(err error) error {
	return E(Invalid, "invalid record body", err)
}

func ValidationFailedErr(err error) error {
	return E(Invalid, "validation failed", err)
}
