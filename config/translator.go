package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/birkirb/loggers.v1/log"
)

var (
	// ErrUnknownLanguage indicates that a requested language is
	// not known to a Translator.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrUnknownTranslation indicates that a requested translation
	// key is not known to a LanguageCatalog.
	ErrUnknownTranslation = errors.New("unknown translation key")
)

// LanguageCatalog is a mapping from translation keys to their individual translations.
// E.g. "enum.batchstatus.closed" => "Closed"
type LanguageCatalog map[string]string

// Translate fetches the translation for a single key. Unknown keys yield the
// placeholder "??key??" together with ErrUnknownTranslation, so callers that
// ignore the error still render something recognisable.
func (languageCatalog LanguageCatalog) Translate(key string) (string, error) {
	translation, exists := languageCatalog[key]
	if !exists || translation == "" {
		return "??" + key + "??", ErrUnknownTranslation
	}

	return translation, nil
}

// Entries returns a copy of all translation keys and their respective translation.
func (languageCatalog LanguageCatalog) Entries() map[string]string {
	entries := make(map[string]string, len(languageCatalog))
	for k, v := range languageCatalog {
		entries[k] = v
	}

	return entries
}

// Translator translates translation keys for different languages.
type Translator struct {
	languages map[string]LanguageCatalog
}

// NewTranslator builds a Translator from already loaded catalogs.
func NewTranslator(languages map[string]LanguageCatalog) Translator {
	copied := make(map[string]LanguageCatalog, len(languages))
	for name, catalog := range languages {
		copied[name] = catalog
	}

	return Translator{languages: copied}
}

// NewTranslatorFromFolder builds a new translator from a given folder,
// recursively loading all i18n jsons which are found in there. The first
// level of folders names the language:
//
//	/i18n
//	-- /en
//	---- columns.json
//	-- /hi
//	---- columns.json
func NewTranslatorFromFolder(i18nRoot string) (Translator, error) {
	folders, err := os.ReadDir(i18nRoot)
	if err != nil {
		return Translator{}, err
	}

	maxKeys := -1
	minKeys := -1

	languages := make(map[string]LanguageCatalog)
	for _, f := range folders {
		if !f.IsDir() {
			continue
		}

		name := f.Name()
		catalog, err := loadTranslationFiles(filepath.Join(i18nRoot, name))
		if err != nil {
			return Translator{}, err
		}

		keysCount := len(catalog)
		if maxKeys == -1 || keysCount > maxKeys {
			maxKeys = keysCount
		}
		if minKeys == -1 || keysCount < minKeys {
			minKeys = keysCount
		}

		log.WithFields(
			"name", name,
			"keys", keysCount,
		).Debug("Assembled language")

		languages[name] = catalog
	}

	log.WithField("count", len(languages)).Info("Successfully loaded languages")

	if minKeys != maxKeys {
		log.Warn("Loaded languages with differing key counts - enable debug logging to identify languages")
	}

	return Translator{languages: languages}, nil
}

// Translate is a shortcut method for getting a LanguageCatalog, and immediately
// fetching a translation from it. Might return either an ErrUnknownLanguage or
// ErrUnknownTranslation, if either the language or the key therein does
// not exist.
func (translator Translator) Translate(language, key string) (string, error) {
	languageCatalog, err := translator.Language(language)
	if err != nil {
		return "", err
	}

	return languageCatalog.Translate(key)
}

// TranslateEnum resolves the label of an enum key in the given language.
// When either the enum key or the translation is unknown, the raw key is
// returned along with the error.
func (translator Translator) TranslateEnum(language string, mapper EnumMapper, enum, key string) (string, error) {
	translationKey, err := mapper.TranslationKeyInEnum(enum, key)
	if err != nil {
		return key, err
	}

	label, err := translator.Translate(language, translationKey)
	if err != nil {
		return key, err
	}

	return label, nil
}

// Language retrieves a specific language catalog if existing, or returns an
// ErrUnknownLanguage otherwise.
func (translator Translator) Language(language string) (LanguageCatalog, error) {
	catalog, exists := translator.languages[language]
	if !exists {
		return nil, ErrUnknownLanguage
	}

	return catalog, nil
}

// LanguageNames returns the names of all loaded languages, sorted.
func (translator Translator) LanguageNames() []string {
	names := make([]string, 0, len(translator.languages))
	for name := range translator.languages {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Languages returns all language catalogs, in no particular order.
func (translator Translator) Languages() []LanguageCatalog {
	languageCatalogs := make([]LanguageCatalog, 0, len(translator.languages))
	for _, v := range translator.languages {
		languageCatalogs = append(languageCatalogs, v)
	}

	return languageCatalogs
}

func loadTranslationFiles(root string) (LanguageCatalog, error) {
	catalog := make(LanguageCatalog)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if filepath.Ext(path) != dotJSON {
			log.WithField("file", path).Debug("Ignoring file, as not a json file!")
			return nil
		}

		keys := make(map[string]string)
		if err := readJSON(path, &keys); err != nil {
			return err
		}

		for key, value := range keys {
			catalog[key] = value
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}
