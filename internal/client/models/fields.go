package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/vehiclehub/internal/common"
)

// Field parse errors. Both match common.ErrorInvalidInput.
var (
	ErrIncorrectField = fmt.Errorf("%w: field must be name=value", common.ErrorInvalidInput)
	ErrUnknownField   = fmt.Errorf("%w: unknown field", common.ErrorInvalidInput)
)

// FieldsFromLines parses "name=value" lines into a payload map. Names and
// values are trimmed; a value may itself contain '='. Empty lines are
// skipped.
func FieldsFromLines(lines []string) (map[string]string, error) {
	fields := make(map[string]string, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, ErrIncorrectField
		}
		fields[name] = strings.TrimSpace(value)
	}
	return fields, nil
}

// UserFromFields builds a User payload from parsed fields.
func UserFromFields(fields map[string]string) (User, error) {
	var u User
	for name, value := range fields {
		switch name {
		case "loginId":
			u.LoginID = value
		case "name":
			u.Name = value
		case "userType":
			u.UserType = value
		case "email":
			u.Email = value
		case "phone":
			u.Phone = value
		default:
			return User{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	return u, nil
}

// VehicleFromFields builds a Vehicle payload from parsed fields. "state"
// and "mileage" populate Status.
func VehicleFromFields(fields map[string]string) (Vehicle, error) {
	var v Vehicle
	for name, value := range fields {
		switch name {
		case "name":
			v.Name = value
		case "manufacturer":
			v.Manufacturer = value
		case "model":
			v.Model = value
		case "licensePlate":
			v.LicensePlate = value
		case "year":
			year, err := strconv.Atoi(value)
			if err != nil {
				return Vehicle{}, fmt.Errorf("%w: year %q is not a number", common.ErrorInvalidInput, value)
			}
			v.Year = year
		case "state":
			if v.Status == nil {
				v.Status = &VehicleStatus{}
			}
			v.Status.State = value
		case "mileage":
			mileage, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return Vehicle{}, fmt.Errorf("%w: mileage %q is not a number", common.ErrorInvalidInput, value)
			}
			if v.Status == nil {
				v.Status = &VehicleStatus{}
			}
			v.Status.Mileage = mileage
		default:
			return Vehicle{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	return v, nil
}
