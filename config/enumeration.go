package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/birkirb/loggers.v1/log"
)

var (
	// ErrUnknownEnum indicates that a requested enum is not
	// known to an EnumMapper.
	ErrUnknownEnum = errors.New("unknown enum")

	// ErrUnknownEnumKey indicates that a requested key is
	// not known to an Enum.
	ErrUnknownEnumKey = errors.New("unknown enum key")
)

// Enum is an assignment of enum keys to translation keys, as the backend
// serializes them. E.g. "Closed" => "enum.batchstatus.closed"
type Enum map[string]string

// KeyWithTranslation is a simple tuple of an enumeration key
// to its translation key.
type KeyWithTranslation struct {
	EnumKey, TranslationKey string
}

// TranslationKey retrieves the translation key for a single enum key, or
// returns an ErrUnknownEnumKey, if the key does not exist.
func (enum Enum) TranslationKey(key string) (string, error) {
	translationKey, exists := enum[key]
	if !exists || translationKey == "" {
		return "", ErrUnknownEnumKey
	}

	return translationKey, nil
}

// Entries returns all enum keys and their respective translation keys,
// ordered by enum key.
func (enum Enum) Entries() []KeyWithTranslation {
	entries := make([]KeyWithTranslation, 0, len(enum))
	for k, v := range enum {
		entries = append(entries, KeyWithTranslation{
			EnumKey:        k,
			TranslationKey: v,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EnumKey < entries[j].EnumKey
	})

	return entries
}

// EnumMapper maps enum names (e.g. "BatchStatus") to their Enum.
type EnumMapper struct {
	enums map[string]Enum
}

// NewEnumMapper builds an EnumMapper from already loaded enums.
func NewEnumMapper(enums map[string]Enum) EnumMapper {
	copied := make(map[string]Enum, len(enums))
	for name, enum := range enums {
		copied[name] = enum
	}

	return EnumMapper{enums: copied}
}

var pathSeparators = regexp.MustCompile(`[\\/]`)

// NewEnumMapperFromFolder builds a new enum mapper from a given folder,
// recursively loading all enum jsons which are found in there. The enum
// name is the file path relative to the folder, without extension and
// separators.
func NewEnumMapperFromFolder(enumRoot string) (EnumMapper, error) {
	enums := make(map[string]Enum)

	err := filepath.WalkDir(enumRoot, func(path string, d fs.DirEntry, err error) error {
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

		relativePath, err := filepath.Rel(enumRoot, path)
		if err != nil {
			return err
		}

		keys, err := loadEnumFile(path)
		if err != nil {
			return err
		}

		name := pathSeparators.ReplaceAllString(strings.TrimSuffix(relativePath, filepath.Ext(path)), "")
		enums[name] = keys

		return nil
	})
	if err != nil {
		return EnumMapper{}, err
	}

	log.WithField("count", len(enums)).Info("Successfully loaded enums")

	return EnumMapper{enums: enums}, nil
}

// TranslationKeyInEnum is a shortcut method for getting an enum, and immediately
// fetching a translation key from it.
func (enumMapper EnumMapper) TranslationKeyInEnum(enum, key string) (string, error) {
	fetchedEnum, err := enumMapper.Enum(enum)
	if err != nil {
		return "", err
	}

	return fetchedEnum.TranslationKey(key)
}

// Enum retrieves a specific enum from the mapper if existing, or returns an
// ErrUnknownEnum otherwise.
func (enumMapper EnumMapper) Enum(enum string) (Enum, error) {
	fetched, exists := enumMapper.enums[enum]
	if !exists {
		return nil, ErrUnknownEnum
	}

	return fetched, nil
}

// Names returns the names of all known enums, sorted.
func (enumMapper EnumMapper) Names() []string {
	names := make([]string, 0, len(enumMapper.enums))
	for name := range enumMapper.enums {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Enums returns all enums which the mapper knows, in no particular order.
func (enumMapper EnumMapper) Enums() []Enum {
	enums := make([]Enum, 0, len(enumMapper.enums))
	for _, v := range enumMapper.enums {
		enums = append(enums, v)
	}

	return enums
}

func loadEnumFile(path string) (Enum, error) {
	dat := Enum{}
	if err := readJSON(path, &dat); err != nil {
		return nil, err
	}

	return dat, nil
}
