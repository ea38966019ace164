package game

import (
	"fmt"
	"math/rand"
)

// FaceSet holds the face of every cell, in row-major order. Each face appears exactly twice.
type FaceSet []Face

func newFaceSet(rnd *rand.Rand) FaceSet {
	faces := make(FaceSet, 0, NumCells)
	for face := Face(1); face <= NumFaces; face++ {
		faces = append(faces, face, face)
	}

	rnd.Shuffle(len(faces), func(i, j int) {
		faces[i], faces[j] = faces[j], faces[i]
	})
	return faces
}

// Counts returns the number of occurrences of each face
func (faces FaceSet) Counts() map[Face]int {
	counts := make(map[Face]int, NumFaces)
	for _, face := range faces {
		counts[face]++
	}
	return counts
}

func (faces FaceSet) validate() error {
	if len(faces) != NumCells {
		return fmt.Errorf("expected %d faces, got %d", NumCells, len(faces))
	}
	for face, count := range faces.Counts() {
		if face < 1 || face > NumFaces {
			return fmt.Errorf("face %d out of range 1-%d", face, NumFaces)
		}
		if count != 2 {
			return fmt.Errorf("face %d appears %d times", face, count)
		}
	}
	return nil
}
