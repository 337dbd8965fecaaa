package usecase

import (
	"andicot_proforma/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultBusinessConfig is served until an admin saves the configuration
// document, and fills any section missing from it.
func DefaultBusinessConfig() entities.BusinessConfig {
	return entities.BusinessConfig{
		Hero: entities.Hero{
			Title:       "Protegemos su infraestructura",
			Subtitle:    "Especialistas en el análisis, diseño e implementación de sistemas electrónicos y eléctricos...",
			Version:     "v3.3",
			Placeholder: "Ingrese su búsqueda...",
		},
		Stats: entities.Stats{Projects: "500+", Years: "15+", Uptime: "99.9%", Support: "24/7"},
		Contact: entities.Contact{
			Phone:        "+593 98 446 7411",
			Email:        "info@andicot.com",
			Address:      "Quito - Ecuador. José Tamayo N24-33 y Baquerizo Moreno. Torres del Castillo, T2, Of. 903.",
			WhatsAppLink: "https://wa.me/593984467411",
		},
		Social: entities.Social{
			Facebook:  "https://www.facebook.com/andicot2018",
			Instagram: "https://www.instagram.com/andicot.ec",
			TikTok:    "https://www.tiktok.com/@andicotec",
		},
		Warranty: entities.Warranty{
			Title:       "Políticas de Garantía",
			Button:      "Ver Garantía",
			CloseButton: "[ ACEPTAR Y CERRAR ]",
			Items: []string{
				"12 meses de garantía técnica.",
				"Asistencia remota inmediata.",
				"Trámite personal con factura.",
			},
		},
		Finance: entities.Finance{TaxRate: "15", DiscountRate: "0"},
		Brands:  []string{"PELCO", "AVIGILON", "MOTOROLA", "LENEL", "EDWARDS", "BOSCH", "NOTIFIER", "TYCO", "HIKVISION"},
	}
}

// DefaultServices is the catalog served while the services table is empty.
func DefaultServices() []entities.Service {
	return []entities.Service{
		defaultService("cctv-ia", "CCTV con IA", "Video", "Sistemas de videovigilancia inteligentes con análisis de video en tiempo real para detección de anomalías y reconocimiento de objetos.", 150),
		defaultService("control-acceso", "Control de Acceso", "UserCheck", "Soluciones de control de acceso biométrico y con tarjetas para garantizar la seguridad de sus instalaciones.", 200),
		defaultService("deteccion-incendios", "Detección de Incendios", "Flame", "Sistemas de detección temprana de incendios con notificación automática a servicios de emergencia y monitoreo 24/7.", 250),
		defaultService("alarmas-intrusion", "Alarmas de Intrusión", "ShieldAlert", "Sistemas de alarma avanzados para proteger su propiedad contra intrusiones no autorizadas, con sensores de última generación.", 180),
		defaultService("cableado-estructurado", "Cableado Estructurado", "Network", "Diseño e implementación de infraestructura de red robusta y escalable para voz, datos y video, certificada bajo estándares internacionales.", 300),
		defaultService("automatizacion-edificios", "Automatización de Edificios", "Building", "Sistemas integrados para la gestión inteligente de iluminación, climatización y seguridad en edificios (BMS).", 500),
		defaultService("mantenimiento-electrico", "Mantenimiento Eléctrico", "Wrench", "Servicios de mantenimiento preventivo y correctivo para sistemas eléctricos de baja y media tensión, asegurando la continuidad operativa.", 120),
		defaultService("consultoria-seguridad", "Consultoría de Seguridad", "ClipboardCheck", "Análisis de riesgos y diseño de estrategias de seguridad física y electrónica personalizadas para su organización.", 400),
		defaultService("integracion-sistemas", "Integración de Sistemas", "GitMerge", "Integración de múltiples sistemas de seguridad y eléctricos (CCTV, acceso, incendios) en una plataforma unificada de gestión.", 450),
	}
}

func defaultService(id, title, icon, description string, price int64) entities.Service {
	return entities.Service{
		ID:          id,
		Title:       title,
		Icon:        icon,
		Description: description,
		UnitPrice:   decimal.NewFromInt(price),
	}
}

// mergeBusinessConfig keeps every stored section and takes the default for
// sections the stored document does not have.
func mergeBusinessConfig(stored, def entities.BusinessConfig) entities.BusinessConfig {
	out := stored
	out.Hero = orDefault(stored.Hero, def.Hero)
	out.Stats = orDefault(stored.Stats, def.Stats)
	out.Contact = orDefault(stored.Contact, def.Contact)
	out.Social = orDefault(stored.Social, def.Social)
	out.Finance = orDefault(stored.Finance, def.Finance)
	if stored.Warranty.Title == "" && stored.Warranty.Button == "" && len(stored.Warranty.Items) == 0 {
		out.Warranty = def.Warranty
	}
	if stored.Brands == nil {
		out.Brands = def.Brands
	}
	return out
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
