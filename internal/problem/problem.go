// Package problem reads reconstruction problems from YAML files. A problem
// gives either integer numerators over a common denominator, or decimal
// approximations that are converted to that form.
//
// A file holds one problem
//
//	denominator: "1000"
//	bound: "12"
//	numerators: ["667", "-750"]
//
// or a list of them under the key problems.
package problem

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/predrag3141/ratrecon/dyadicvec"
	"github.com/predrag3141/ratrecon/ratrecon"
)

type Problem struct {
	Name        string   `yaml:"name,omitempty"`
	Denominator string   `yaml:"denominator,omitempty"`
	Numerators  []string `yaml:"numerators,omitempty"`
	Decimals    []string `yaml:"decimals,omitempty"`
	Bound       string   `yaml:"bound,omitempty"`
}

type file struct {
	Problem  `yaml:",inline"`
	Problems []Problem `yaml:"problems,omitempty"`
}

// Load returns the problems in the YAML file at path
func Load(path string) ([]Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}
	return Parse(data)
}

// Parse returns the problems in data, YAML in the format read by Load
func Parse(data []byte) ([]Problem, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse problem file: %w", err)
	}
	single := f.Problem.Denominator != "" || f.Problem.Decimals != nil
	if single && len(f.Problems) > 0 {
		return nil, fmt.Errorf("problem file has both a top level problem and a problems list")
	}
	if single {
		return []Problem{f.Problem}, nil
	}
	if len(f.Problems) == 0 {
		return nil, fmt.Errorf("problem file has no problems")
	}
	return f.Problems, nil
}

// Resolve converts p to a vector problem. Decimals are parsed with precision
// bits. defaultBound is used when p has no bound; it may be nil.
func (p Problem) Resolve(precision int64, defaultBound *big.Int) (ratrecon.VectorProblem[*big.Int], error) {
	var retVal ratrecon.VectorProblem[*big.Int]
	bound, err := p.bound(defaultBound)
	if err != nil {
		return retVal, err
	}
	retVal.Bound = bound

	if p.Decimals != nil {
		if p.Denominator != "" || p.Numerators != nil {
			return retVal, fmt.Errorf("problem %q: decimals cannot be combined with numerators", p.Name)
		}
		v, err := dyadicvec.NewFromDecimalStringArray(p.Decimals, precision)
		if err != nil {
			return retVal, fmt.Errorf("problem %q: %w", p.Name, err)
		}
		retVal.Numerators, retVal.Denominator = v.CommonDenominator()
		return retVal, nil
	}

	if p.Denominator == "" {
		return retVal, fmt.Errorf("problem %q: neither denominator nor decimals given", p.Name)
	}
	retVal.Denominator, err = parseInt(p.Denominator)
	if err != nil {
		return retVal, fmt.Errorf("problem %q: denominator: %w", p.Name, err)
	}
	if retVal.Denominator.Sign() <= 0 {
		return retVal, fmt.Errorf("problem %q: denominator %s must be positive", p.Name, p.Denominator)
	}
	retVal.Numerators = make([]*big.Int, len(p.Numerators))
	for i, s := range p.Numerators {
		if retVal.Numerators[i], err = parseInt(s); err != nil {
			return retVal, fmt.Errorf("problem %q: numerator %d: %w", p.Name, i, err)
		}
	}
	return retVal, nil
}

func (p Problem) bound(defaultBound *big.Int) (*big.Int, error) {
	if p.Bound == "" {
		if defaultBound == nil {
			return nil, fmt.Errorf("problem %q: no bound given", p.Name)
		}
		return big.NewInt(0).Set(defaultBound), nil
	}
	bound, err := parseInt(p.Bound)
	if err != nil {
		return nil, fmt.Errorf("problem %q: bound: %w", p.Name, err)
	}
	if bound.Sign() <= 0 {
		return nil, fmt.Errorf("problem %q: bound %s must be positive", p.Name, p.Bound)
	}
	return bound, nil
}

func parseInt(s string) (*big.Int, error) {
	x, ok := big.NewInt(0).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a decimal integer", s)
	}
	return x, nil
}
