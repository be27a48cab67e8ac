package chess

import "strings"

const fileLabels = " abcdefgh \n"

// Render draws the board as an ASCII diagram: files on the top and bottom
// lines, rank numbers on both sides from rank 8 down to rank 1. White
// pieces are uppercase, Black lowercase, empty squares a space.
func Render(b *Board) string {
	var sb strings.Builder
	sb.WriteString(fileLabels)
	for row := BoardSize - 1; row >= 0; row-- {
		rank := byte(RankBase + row)
		sb.WriteByte(rank)
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.squares[row][col].Letter())
		}
		sb.WriteByte(rank)
		sb.WriteByte('\n')
	}
	sb.WriteString(fileLabels)
	return sb.String()
}

// String implements fmt.Stringer using Render.
func (b *Board) String() string {
	return Render(b)
}
