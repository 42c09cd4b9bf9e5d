// Package redis guarda la configuración del operador como un único documento JSON.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
	"github.com/jhoicas/pipeday-api/pkg/config"
)

// NewClient construye el cliente a partir de la configuración.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// SettingsRepository implementa repository.SettingsRepository sobre una clave de Redis.
type SettingsRepository struct {
	rdb goredis.Cmdable
	key string
}

var _ repository.SettingsRepository = (*SettingsRepository)(nil)

// NewSettingsRepository crea el repositorio. key vacío usa "pipeday:settings".
func NewSettingsRepository(rdb goredis.Cmdable, key string) *SettingsRepository {
	if key == "" {
		key = "pipeday:settings"
	}
	return &SettingsRepository{rdb: rdb, key: key}
}

// settingsRecord forma persistida; separada de la entidad para no acoplarla a JSON.
type settingsRecord struct {
	Profile struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		PixKey string `json:"pix_key"`
	} `json:"profile"`
	Workspace struct {
		Name   string `json:"name"`
		Domain string `json:"domain"`
	} `json:"workspace"`
	Notifications struct {
		Payments bool `json:"payments"`
		Leads    bool `json:"leads"`
		Expired  bool `json:"expired"`
		Reports  bool `json:"reports"`
	} `json:"notifications"`
	Theme string `json:"theme"`
}

func toRecord(s entity.Settings) settingsRecord {
	var r settingsRecord
	r.Profile.Name = s.Profile.Name
	r.Profile.Email = s.Profile.Email
	r.Profile.PixKey = s.Profile.PixKey
	r.Workspace.Name = s.Workspace.Name
	r.Workspace.Domain = s.Workspace.Domain
	r.Notifications.Payments = s.Notifications.Payments
	r.Notifications.Leads = s.Notifications.Leads
	r.Notifications.Expired = s.Notifications.Expired
	r.Notifications.Reports = s.Notifications.Reports
	r.Theme = string(s.Theme)
	return r
}

func (r settingsRecord) toEntity() *entity.Settings {
	return &entity.Settings{
		Profile: entity.Profile{
			Name:   r.Profile.Name,
			Email:  r.Profile.Email,
			PixKey: r.Profile.PixKey,
		},
		Workspace: entity.Workspace{Name: r.Workspace.Name, Domain: r.Workspace.Domain},
		Notifications: entity.Notifications{
			Payments: r.Notifications.Payments,
			Leads:    r.Notifications.Leads,
			Expired:  r.Notifications.Expired,
			Reports:  r.Notifications.Reports,
		},
		Theme: entity.Theme(r.Theme),
	}
}

// Load devuelve (nil, nil) si la clave no existe.
func (r *SettingsRepository) Load(ctx context.Context) (*entity.Settings, error) {
	raw, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis settings get: %w", err)
	}
	var rec settingsRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("redis settings decode: %w", err)
	}
	return rec.toEntity(), nil
}

// Save reemplaza el documento completo, sin expiración.
func (r *SettingsRepository) Save(ctx context.Context, s entity.Settings) error {
	raw, err := json.Marshal(toRecord(s))
	if err != nil {
		return fmt.Errorf("redis settings encode: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis settings set: %w", err)
	}
	return nil
}
