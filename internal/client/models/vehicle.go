package models

import (
	"encoding/json"
	"maps"
)

// Vehicle is a vehicle record as served by /vehicles.
type Vehicle struct {
	VehicleKey   string         `json:"vehicleKey,omitempty"`
	ID           ID             `json:"id,omitempty"`
	Name         string         `json:"name,omitempty"`
	Manufacturer string         `json:"manufacturer,omitempty"`
	Model        string         `json:"model,omitempty"`
	Year         int            `json:"year,omitempty"`
	LicensePlate string         `json:"licensePlate,omitempty"`
	Status       *VehicleStatus `json:"status,omitempty"`
	CreatedAt    string         `json:"createdAt,omitempty"`
	UpdatedAt    string         `json:"updatedAt,omitempty"`
}

// ResourceKey returns vehicleKey, or id for servers that only send that.
func (v Vehicle) ResourceKey() string {
	if v.VehicleKey != "" {
		return v.VehicleKey
	}
	return v.ID.String()
}

// VehicleStatus carries the operational state of a vehicle. Fields the
// client does not model are kept in Extra and written back unchanged.
type VehicleStatus struct {
	State   string                     `json:"-"`
	Mileage int64                      `json:"-"`
	Extra   map[string]json.RawMessage `json:"-"`
}

func (s VehicleStatus) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.Extra)+2)
	maps.Copy(out, s.Extra)

	if s.State != "" {
		b, err := json.Marshal(s.State)
		if err != nil {
			return nil, err
		}
		out["state"] = b
	}
	if s.Mileage != 0 {
		b, err := json.Marshal(s.Mileage)
		if err != nil {
			return nil, err
		}
		out["mileage"] = b
	}
	return json.Marshal(out)
}

func (s *VehicleStatus) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*s = VehicleStatus{}
	if v, ok := raw["state"]; ok {
		if err := json.Unmarshal(v, &s.State); err != nil {
			return err
		}
		delete(raw, "state")
	}
	if v, ok := raw["mileage"]; ok {
		if err := json.Unmarshal(v, &s.Mileage); err != nil {
			return err
		}
		delete(raw, "mileage")
	}
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}
