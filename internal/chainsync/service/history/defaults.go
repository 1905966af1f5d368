package history

const defaultPageSize uint32 = 100
