package entity

// Theme tema visual del panel.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid indica si el tema es light o dark.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Profile datos del operador; PixKey se usa para los cobros Pix.
type Profile struct {
	Name   string
	Email  string
	PixKey string
}

// Workspace datos del espacio de trabajo.
type Workspace struct {
	Name   string
	Domain string
}

// Notifications preferencias de aviso.
type Notifications struct {
	Payments bool
	Leads    bool
	Expired  bool
	Reports  bool
}

// Settings configuración mutable del operador.
type Settings struct {
	Profile       Profile
	Workspace     Workspace
	Notifications Notifications
	Theme         Theme
}

// DefaultSettings valores iniciales cuando el almacén aún no tiene nada guardado.
func DefaultSettings() Settings {
	return Settings{
		Profile:       Profile{Name: "Admin", Email: "admin@pipeday.com"},
		Workspace:     Workspace{Name: "Pipe Day Solutions"},
		Notifications: Notifications{Payments: true, Leads: true, Expired: true},
		Theme:         ThemeLight,
	}
}
