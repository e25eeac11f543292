package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Timer": {
		"es": "Temporizador",
	},
	"Enter Time": {
		"es": "Ingresar Tiempo",
	},
	"Enter the time and press:\n'D' for minutes\n'F' for seconds": {
		"es": "Ingrese el tiempo y presione:\n'D' para minutos\n'F' para segundos",
	},
	"Enter a value": {
		"es": "Ingrese el valor",
	},
	"Please enter a valid number greater than 0": {
		"es": "Por favor ingrese un número válido mayor que 0",
	},
	"Start": {
		"es": "Iniciar",
	},
	"Pause": {
		"es": "Pausar",
	},
	"Resume": {
		"es": "Reanudar",
	},
	"Stop": {
		"es": "Detener",
	},
	"Cancel": {
		"es": "Cancelar",
	},
	"Quit": {
		"es": "Salir",
	},
	"New": {
		"es": "Nuevo",
	},
	"Time is up": {
		"es": "Se acabó el tiempo",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("COUNTDOWN_LANG")); forcedLang != "" {
		log.Printf("COUNTDOWN_LANG is set to: '%s'", forcedLang)
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}
	if len(userLocales) == 0 {
		lang = "en"
		return
	}
	lang = fromLocale(userLocales[0])
	log.Printf("Language set to: %s", lang)
}

func fromLocale(l string) string {
	if strings.HasPrefix(strings.ToLower(l), "es") {
		return "es"
	}
	return "en"
}

// T returns the translation of key, or key itself when there is none.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}

// SetLang forces the language, for instance from a command line flag.
func SetLang(l string) {
	lang = strings.TrimSpace(l)
}
