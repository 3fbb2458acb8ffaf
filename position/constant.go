package position

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

var (
	A1 = Pos{File: FileA, Rank: Rank1}
	B1 = Pos{File: FileB, Rank: Rank1}
	C1 = Pos{File: FileC, Rank: Rank1}
	D1 = Pos{File: FileD, Rank: Rank1}
	E1 = Pos{File: FileE, Rank: Rank1}
	F1 = Pos{File: FileF, Rank: Rank1}
	G1 = Pos{File: FileG, Rank: Rank1}
	H1 = Pos{File: FileH, Rank: Rank1}
	A2 = Pos{File: FileA, Rank: Rank2}
	B2 = Pos{File: FileB, Rank: Rank2}
	C2 = Pos{File: FileC, Rank: Rank2}
	D2 = Pos{File: FileD, Rank: Rank2}
	E2 = Pos{File: FileE, Rank: Rank2}
	F2 = Pos{File: FileF, Rank: Rank2}
	G2 = Pos{File: FileG, Rank: Rank2}
	H2 = Pos{File: FileH, Rank: Rank2}
	A3 = Pos{File: FileA, Rank: Rank3}
	B3 = Pos{File: FileB, Rank: Rank3}
	C3 = Pos{File: FileC, Rank: Rank3}
	D3 = Pos{File: FileD, Rank: Rank3}
	E3 = Pos{File: FileE, Rank: Rank3}
	F3 = Pos{File: FileF, Rank: Rank3}
	G3 = Pos{File: FileG, Rank: Rank3}
	H3 = Pos{File: FileH, Rank: Rank3}
	A4 = Pos{File: FileA, Rank: Rank4}
	B4 = Pos{File: FileB, Rank: Rank4}
	C4 = Pos{File: FileC, Rank: Rank4}
	D4 = Pos{File: FileD, Rank: Rank4}
	E4 = Pos{File: FileE, Rank: Rank4}
	F4 = Pos{File: FileF, Rank: Rank4}
	G4 = Pos{File: FileG, Rank: Rank4}
	H4 = Pos{File: FileH, Rank: Rank4}
	A5 = Pos{File: FileA, Rank: Rank5}
	B5 = Pos{File: FileB, Rank: Rank5}
	C5 = Pos{File: FileC, Rank: Rank5}
	D5 = Pos{File: FileD, Rank: Rank5}
	E5 = Pos{File: FileE, Rank: Rank5}
	F5 = Pos{File: FileF, Rank: Rank5}
	G5 = Pos{File: FileG, Rank: Rank5}
	H5 = Pos{File: FileH, Rank: Rank5}
	A6 = Pos{File: FileA, Rank: Rank6}
	B6 = Pos{File: FileB, Rank: Rank6}
	C6 = Pos{File: FileC, Rank: Rank6}
	D6 = Pos{File: FileD, Rank: Rank6}
	E6 = Pos{File: FileE, Rank: Rank6}
	F6 = Pos{File: FileF, Rank: Rank6}
	G6 = Pos{File: FileG, Rank: Rank6}
	H6 = Pos{File: FileH, Rank: Rank6}
	A7 = Pos{File: FileA, Rank: Rank7}
	B7 = Pos{File: FileB, Rank: Rank7}
	C7 = Pos{File: FileC, Rank: Rank7}
	D7 = Pos{File: FileD, Rank: Rank7}
	E7 = Pos{File: FileE, Rank: Rank7}
	F7 = Pos{File: FileF, Rank: Rank7}
	G7 = Pos{File: FileG, Rank: Rank7}
	H7 = Pos{File: FileH, Rank: Rank7}
	A8 = Pos{File: FileA, Rank: Rank8}
	B8 = Pos{File: FileB, Rank: Rank8}
	C8 = Pos{File: FileC, Rank: Rank8}
	D8 = Pos{File: FileD, Rank: Rank8}
	E8 = Pos{File: FileE, Rank: Rank8}
	F8 = Pos{File: FileF, Rank: Rank8}
	G8 = Pos{File: FileG, Rank: Rank8}
	H8 = Pos{File: FileH, Rank: Rank8}
)
