/*
Package textbook provides the small example datasets of "Statistical Learning
Methods" (Li Hang) used to exercise the classifiers and the entropy engine.
*/
package textbook

import "github.com/pbanos/statlearn/dataset"

// Values of the second feature of the weather dataset.
const (
	S = 1
	M = 2
	L = 3
)

const (
	// WeatherDims is the number of features of a weather record
	WeatherDims = 2
	// WeatherClasses is the number of classes of the weather dataset
	WeatherClasses = 2
	// WeatherMaxFeatureValue is the highest value any weather feature takes
	WeatherMaxFeatureValue = 3
)

/*
Weather returns the 15 records of example 4.2. The first feature takes
values in {1, 2, 3}, the second in {S, M, L}. Labels y=-1 and y=1 are mapped
to classes 0 and 1 respectively.
*/
func Weather() *dataset.Dataset[[]int, int] {
	d := dataset.New[[]int, int]()

	d.Insert([]int{1, S}, 0)
	d.Insert([]int{1, M}, 0)
	d.Insert([]int{1, M}, 1)
	d.Insert([]int{1, S}, 1)
	d.Insert([]int{1, S}, 0)

	d.Insert([]int{2, S}, 0)
	d.Insert([]int{2, M}, 0)
	d.Insert([]int{2, M}, 1)
	d.Insert([]int{2, L}, 1)
	d.Insert([]int{2, L}, 1)

	d.Insert([]int{3, L}, 1)
	d.Insert([]int{3, M}, 1)
	d.Insert([]int{3, M}, 1)
	d.Insert([]int{3, L}, 1)
	d.Insert([]int{3, L}, 0)

	return d
}

// WeatherLabel takes a class of the weather dataset and returns its textbook label.
func WeatherLabel(class int) int {
	if class == 0 {
		return -1
	}
	return 1
}

// WeatherValueName takes a value of the second weather feature and returns its letter.
func WeatherValueName(v int) string {
	switch v {
	case S:
		return "S"
	case M:
		return "M"
	case L:
		return "L"
	}
	return "?"
}
