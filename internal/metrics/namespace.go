package metrics

const IrrigoDashNamespace = "irrigodash"
