package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/home"
	"github.com/Adebola11/Smart-Home-Controller-Pro/pkg/models"
	"gopkg.in/yaml.v3"
)

// SeedFile describes the optional YAML seed for the household: devices,
// automation rules, and login accounts. The energy series is always
// generated fresh at startup and is not part of the file.
type SeedFile struct {
	Devices []DeviceSpec `yaml:"devices"`
	Rules   []RuleSpec   `yaml:"rules"`
	Users   []UserSpec   `yaml:"users"`
}

type DeviceSpec struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	Type  string  `yaml:"type"`
	Room  string  `yaml:"room"`
	Power float64 `yaml:"power"`
	State bool    `yaml:"state"`
	Value float64 `yaml:"value"`
}

type RuleSpec struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Time    string `yaml:"time"`
	Device  string `yaml:"device"`
	Action  string `yaml:"action"`
	Enabled bool   `yaml:"enabled"`
}

type UserSpec struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

var deviceTypes = map[string]models.DeviceType{
	string(models.DeviceTypeLight):      models.DeviceTypeLight,
	string(models.DeviceTypeDoor):       models.DeviceTypeDoor,
	string(models.DeviceTypeCamera):     models.DeviceTypeCamera,
	string(models.DeviceTypeFan):        models.DeviceTypeFan,
	string(models.DeviceTypeThermostat): models.DeviceTypeThermostat,
}

var roles = map[string]models.Role{
	string(models.RoleAdmin): models.RoleAdmin,
	string(models.RoleUser):  models.RoleUser,
	string(models.RoleGuest): models.RoleGuest,
}

// LoadSeed reads a seed file, or returns the built-in demo household
// when path is empty. now anchors any pre-seeded log entries.
func LoadSeed(path string, now time.Time) (home.Seed, error) {
	if path == "" {
		return home.DefaultSeed(now), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return home.Seed{}, fmt.Errorf("reading seed file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var file SeedFile
	if err := yaml.Unmarshal([]byte(expanded), &file); err != nil {
		return home.Seed{}, fmt.Errorf("parsing seed file: %w", err)
	}

	return file.ToSeed()
}

// ToSeed validates the parsed file and converts it to a runtime seed.
func (f *SeedFile) ToSeed() (home.Seed, error) {
	seed := home.Seed{
		Users:  make(map[string]models.Credential, len(f.Users)),
		Energy: home.RandomEnergySeries(),
	}

	deviceIDs := make(map[string]bool, len(f.Devices))
	for _, spec := range f.Devices {
		if spec.ID == "" {
			return home.Seed{}, fmt.Errorf("seed device %q: missing id", spec.Name)
		}
		if deviceIDs[spec.ID] {
			return home.Seed{}, fmt.Errorf("seed device %q: duplicate id", spec.ID)
		}
		deviceType, ok := deviceTypes[spec.Type]
		if !ok {
			return home.Seed{}, fmt.Errorf("seed device %q: unknown type %q", spec.ID, spec.Type)
		}
		if spec.Power < 0 {
			return home.Seed{}, fmt.Errorf("seed device %q: negative power", spec.ID)
		}

		deviceIDs[spec.ID] = true
		seed.Devices = append(seed.Devices, models.Device{
			ID:     spec.ID,
			Name:   spec.Name,
			Type:   deviceType,
			Room:   spec.Room,
			PowerW: spec.Power,
			State:  spec.State,
			Value:  spec.Value,
		})
	}

	for _, spec := range f.Rules {
		if !deviceIDs[spec.Device] {
			return home.Seed{}, fmt.Errorf("seed rule %d: unknown device %q", spec.ID, spec.Device)
		}
		seed.Rules = append(seed.Rules, models.AutomationRule{
			ID:       spec.ID,
			Name:     spec.Name,
			Time:     spec.Time,
			DeviceID: spec.Device,
			Action:   spec.Action,
			Enabled:  spec.Enabled,
		})
	}

	for _, spec := range f.Users {
		role, ok := roles[spec.Role]
		if !ok {
			return home.Seed{}, fmt.Errorf("seed user %q: unknown role %q", spec.Username, spec.Role)
		}
		seed.Users[spec.Username] = models.Credential{
			Password: spec.Password,
			Role:     role,
		}
	}

	return seed, nil
}
