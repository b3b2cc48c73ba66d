package conformance

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TestPath is the directory holding the YAML suite files
const TestPath = "testdata"

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests reads every .yaml file under TestPath and returns all
// test cases in file order
func LoadAllTests() ([]LoadedTest, error) {
	paths, err := filepath.Glob(filepath.Join(TestPath, "*.yaml"))
	if err != nil {
		return nil, err
	}

	var loaded []LoadedTest
	for _, path := range paths {
		suite, err := loadTestFile(path)
		if err != nil {
			return nil, err
		}
		for _, test := range suite.Tests {
			loaded = append(loaded, LoadedTest{
				File:  filepath.Base(path),
				Suite: suite,
				Test:  test,
			})
		}
	}
	return loaded, nil
}

// loadTestFile parses a single YAML suite file
func loadTestFile(path string) (TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TestSuite{}, err
	}
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return TestSuite{}, err
	}
	return suite, nil
}
