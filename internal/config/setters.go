package config

import "strconv"

func setInt(dst *int, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setFloat(dst *float64, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setBool(dst *bool, value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
