// Package record defines the typed rows that flow between the farm-data
// layer and the analytics toolkit.
//
// The web application assembles these values from storage and hands them to
// the toolkit packages (linkedlist, bst, pqueue, algorithms, numeric, stats).
// Every toolkit operation reads the fields it needs through a key extractor
// (e.g. PlantingID, PlotYieldValue), so a missing field is a compile error
// rather than a runtime lookup failure.
//
// Records are owned by the caller. Toolkit operations never retain them past
// the call that received them.
//
//	p := record.Planting{ID: 7, Crop: "maize", Plot: "north", AreaHa: 2.5}
//	y, err := record.YieldPerHectare(5400, p.AreaHa) // 2160 kg/ha
package record
