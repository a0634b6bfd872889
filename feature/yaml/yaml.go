/*
Package yaml provides methods to parse feature.DiscreteFeature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/pbanos/statlearn/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it or an error.
The YML is expected to be an object containing a features property. The value
for this should be an object with a property for each feature with its name and
either the list of its values, in order, or an integer with its domain size.
Features are returned in the order in which they are declared.
*/
func ReadFeatures(md []byte) ([]*feature.DiscreteFeature, error) {
	metadata := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata has no feature information")
	}
	features := make([]*feature.DiscreteFeature, 0, len(metadata.Features))
	seen := make(map[string]bool)
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		if seen[fn] {
			return nil, fmt.Errorf("feature %s declared more than once", fn)
		}
		seen[fn] = true
		switch values := item.Value.(type) {
		case int:
			if values <= 0 {
				return nil, fmt.Errorf("feature %s must have a positive domain size, got %d", fn, values)
			}
			features = append(features, feature.NewFeatureWithSize(fn, values))
		case []interface{}:
			if len(values) == 0 {
				return nil, fmt.Errorf("feature %s declares no values", fn)
			}
			stringVs := make([]string, 0, len(values))
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			features = append(features, feature.NewDiscreteFeature(fn, stringVs))
		case string:
			return nil, fmt.Errorf("feature %s: only discrete features are supported, got %q", fn, values)
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T for feature %s", item.Value, fn)
		}
	}
	return features, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]*feature.DiscreteFeature, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return features, err
}

/*
FeaturesByName takes a slice of features and returns a map of their names
to them.
*/
func FeaturesByName(features []*feature.DiscreteFeature) map[string]*feature.DiscreteFeature {
	result := make(map[string]*feature.DiscreteFeature)
	for _, f := range features {
		result[f.Name()] = f
	}
	return result
}
