package quiz

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed bank.schema.json
var bankSchemaJSON []byte

const bankSchemaURL = "schema://geoquiz/bank.json"

var (
	bankSchemaOnce sync.Once
	bankSchema     *jsonschema.Schema
	bankSchemaErr  error
)

// BankFile is a question bank loaded from a YAML document.
type BankFile struct {
	Bank *Bank

	// Texts maps question keys to the prompt text given in the document.
	// Keys without inline text are absent.
	Texts map[string]string
}

type bankDocument struct {
	Questions []bankEntry `yaml:"questions"`
}

type bankEntry struct {
	Key    string `yaml:"key"`
	Text   string `yaml:"text"`
	Answer bool   `yaml:"answer"`
}

// LoadBankFile reads and validates the YAML bank at path.
func LoadBankFile(path string) (*BankFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return ParseBank(data, path)
}

// ParseBank validates data against the bank schema and decodes it.
// Source names the document in errors.
func ParseBank(data []byte, source string) (*BankFile, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ErrInvalidBank{Source: source, Err: err}
	}
	if err := validateBank(raw); err != nil {
		return nil, &ErrInvalidBank{Source: source, Err: err}
	}

	var doc bankDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ErrInvalidBank{Source: source, Err: err}
	}

	questions := make([]Question, 0, len(doc.Questions))
	texts := make(map[string]string)
	for _, e := range doc.Questions {
		questions = append(questions, Question{TextKey: e.Key, Answer: e.Answer})
		if e.Text != "" {
			texts[e.Key] = e.Text
		}
	}

	bank, err := NewBank(questions...)
	if err != nil {
		return nil, &ErrInvalidBank{Source: source, Err: err}
	}
	return &BankFile{Bank: bank, Texts: texts}, nil
}

// validateBank checks a decoded YAML value against the embedded schema.
// The value is round-tripped through JSON so the validator sees JSON types.
func validateBank(raw any) error {
	schema, err := compiledBankSchema()
	if err != nil {
		return err
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert to JSON: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledBankSchema() (*jsonschema.Schema, error) {
	bankSchemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(bankSchemaJSON))
		if err != nil {
			bankSchemaErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, def); err != nil {
			bankSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		bankSchema, bankSchemaErr = c.Compile(bankSchemaURL)
	})
	return bankSchema, bankSchemaErr
}
