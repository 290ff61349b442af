// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import "fmt"

func ExampleFormat_Add() {
	x, _, _ := Binary64.ParseFloat("1.5", ToNearestEven)
	y, _, _ := Binary64.ParseFloat("0.25", ToNearestEven)
	sum, _ := Binary64.Add(x, y, ToNearestEven)
	fmt.Println(Binary64.FormatFloat(sum))
	// Output:
	// 1.75
}

func ExampleFormat_Div() {
	x, _, _ := Binary16.ParseFloat("1", ToNearestEven)
	y, _, _ := Binary16.ParseFloat("3", ToNearestEven)
	quo, fl := Binary16.Div(x, y, ToNearestEven)
	fmt.Println(Binary16.FormatFloat(quo), fl)
	quo, fl = Binary16.Div(x, Binary16.Zero(false), ToNearestEven)
	fmt.Println(Binary16.FormatFloat(quo), fl)
	// Output:
	// 0.333251953125 Inexact
	// +Inf DivByZero
}

func ExampleEngine_Evaluate() {
	e := New(Binary32)
	x, _, _ := Binary32.ParseFloat("6", ToNearestEven)
	y, _, _ := Binary32.ParseFloat("2", ToNearestEven)
	var acc Accumulator
	for _, op := range []Op{OpAdd, OpSub, OpMul, OpDiv} {
		res, fl := e.Evaluate(op, x, y, ToNearestEven)
		acc.Collect(fl)
		fmt.Println(op, "=", Binary32.FormatFloat(res))
	}
	fmt.Println("flags:", acc.Flags())
	// Output:
	// Add = 8
	// Sub = 4
	// Mul = 12
	// Div = 3
	// flags: None
}

func ExampleConvert() {
	x, _, _ := Binary64.ParseFloat("0.1", ToNearestEven)
	narrow, fl := Convert(x, Binary64, Binary16, ToNearestEven)
	fmt.Printf("%#04x %v\n", narrow, fl)
	// Output:
	// 0x2e66 Inexact
}
