package config_test

import "github.com/katalvlaran/roadload/congestion"

func congestionConstant(v float64) congestion.Spec {
	return congestion.Spec{Kind: congestion.KindConstant, Value: v}
}
